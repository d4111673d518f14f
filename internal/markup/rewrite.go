package markup

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"delegate-rewriter/internal/diagnostic"
	"delegate-rewriter/internal/invoke"
	"delegate-rewriter/internal/match"
	"delegate-rewriter/internal/rewrite"
)

// handlerAttrs are the inline-handler attributes the scanner converts.
var handlerAttrs = map[string]struct{}{
	"onclick":  {},
	"onchange": {},
	"onsubmit": {},
}

// maxSuggestions bounds the "did you mean" list on unknown functions.
const maxSuggestions = 3

// Rewrite converts all inline-handler attributes in the given HTML.
// It accepts both full documents and fragments (table rows, modals).
// The returned diagnostics describe every element left untouched.
func Rewrite(data []byte, rw *rewrite.Rewriter) ([]byte, *diagnostic.Diagnostics, error) {
	diags := &diagnostic.Diagnostics{}

	if isDocument(data) {
		out, err := rewriteDocument(data, rw, diags)
		return out, diags, err
	}

	out, err := rewriteFragment(data, rw, diags)

	return out, diags, err
}

// isDocument reports whether the input looks like a full HTML document
// rather than a fragment.
func isDocument(data []byte) bool {
	head := strings.ToLower(string(bytes.TrimSpace(data)))

	return strings.HasPrefix(head, "<!doctype") || strings.HasPrefix(head, "<html")
}

func rewriteDocument(data []byte, rw *rewrite.Rewriter, diags *diagnostic.Diagnostics) ([]byte, error) {
	root, err := html.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML document: %w", err)
	}

	walk(root, rw, diags)

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return nil, fmt.Errorf("failed to render HTML document: %w", err)
	}

	return buf.Bytes(), nil
}

func rewriteFragment(data []byte, rw *rewrite.Rewriter, diags *diagnostic.Diagnostics) ([]byte, error) {
	context := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}

	nodes, err := html.ParseFragment(bytes.NewReader(data), context)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML fragment: %w", err)
	}

	var buf bytes.Buffer

	for _, n := range nodes {
		walk(n, rw, diags)

		if err := html.Render(&buf, n); err != nil {
			return nil, fmt.Errorf("failed to render HTML fragment: %w", err)
		}
	}

	return buf.Bytes(), nil
}

func walk(n *html.Node, rw *rewrite.Rewriter, diags *diagnostic.Diagnostics) {
	if n.Type == html.ElementNode {
		rewriteElement(n, rw, diags)
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, rw, diags)
	}
}

// rewriteElement converts the element's handler attributes, if any.
// On any conversion failure the element is left exactly as parsed.
func rewriteElement(n *html.Node, rw *rewrite.Rewriter, diags *diagnostic.Diagnostics) {
	for i := 0; i < len(n.Attr); i++ {
		attr := n.Attr[i]
		if attr.Namespace != "" {
			continue
		}

		if _, ok := handlerAttrs[attr.Key]; !ok {
			continue
		}

		res, diag := convert(n.Data, attr, rw)
		if res == nil {
			diags.Append(diag)
			continue
		}

		// Drop the handler attribute and splice in the delegated ones.
		n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
		i--

		for _, out := range res.Attrs() {
			setAttr(n, out.Name, out.Value)
		}
	}
}

// convert runs parse + rewrite for one handler value and classifies the
// failure, if any, into a diagnostic.
func convert(tag string, attr html.Attribute, rw *rewrite.Rewriter) (rewrite.Result, diagnostic.Diagnostic) {
	subject := "<" + tag + " " + attr.Key + ">"

	inv, err := invoke.Parse(attr.Val)
	if err != nil {
		return nil, diagnostic.Diagnostic{
			Severity: diagnostic.SeverityWarning,
			Code:     "malformed_handler",
			Message:  "handler is not a convertible call expression",
			Subject:  subject,
			Detail:   attr.Val,
		}
	}

	res, err := rw.Rewrite(inv)
	if err == nil {
		return res, diagnostic.Diagnostic{}
	}

	switch {
	case errors.Is(err, rewrite.ErrUnknownFunction):
		return nil, diagnostic.Diagnostic{
			Severity:    diagnostic.SeverityWarning,
			Code:        "unknown_function",
			Message:     fmt.Sprintf("no mapping registered for %q", inv.Func),
			Subject:     inv.Func,
			Detail:      attr.Val,
			Suggestions: match.Suggest(inv.Func, rw.Table().Names(), maxSuggestions),
		}

	case errors.Is(err, rewrite.ErrArityMismatch):
		// A stale mapping, not a markup problem.
		return nil, diagnostic.Diagnostic{
			Severity: diagnostic.SeverityError,
			Code:     "arity_mismatch",
			Message:  err.Error(),
			Subject:  inv.Func,
			Detail:   attr.Val,
		}

	default:
		return nil, diagnostic.Diagnostic{
			Severity: diagnostic.SeverityError,
			Code:     "rewrite_failed",
			Message:  err.Error(),
			Subject:  inv.Func,
			Detail:   attr.Val,
		}
	}
}

// setAttr sets or replaces an attribute, preserving position when the
// key already exists.
func setAttr(n *html.Node, key, value string) {
	for i := range n.Attr {
		if n.Attr[i].Namespace == "" && n.Attr[i].Key == key {
			n.Attr[i].Val = value
			return
		}
	}

	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: value})
}
