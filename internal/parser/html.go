package parser

import (
	"strings"

	"golang.org/x/net/html"
)

// Вспомогательные функции обхода дерева golang.org/x/net/html.

func attrValue(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func hasAttr(n *html.Node, key string) bool {
	_, ok := attrValue(n, key)
	return ok
}

func hasClass(n *html.Node, class string) bool {
	val, ok := attrValue(n, "class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(val) {
		if c == class {
			return true
		}
	}
	return false
}

func isElement(n *html.Node, tag string) bool {
	return n.Type == html.ElementNode && n.Data == tag
}

// findFirst возвращает первый элемент tag с классом class (class == "" — любой)
// в порядке обхода в глубину, либо nil.
func findFirst(n *html.Node, tag, class string) *html.Node {
	if isElement(n, tag) && (class == "" || hasClass(n, class)) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag, class); found != nil {
			return found
		}
	}
	return nil
}

// findAll собирает все элементы tag с классом class в порядке обхода в глубину.
func findAll(n *html.Node, tag, class string) []*html.Node {
	var result []*html.Node
	var traverse func(*html.Node)
	traverse = func(node *html.Node) {
		if isElement(node, tag) && (class == "" || hasClass(node, class)) {
			result = append(result, node)
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		traverse(c)
	}
	return result
}

// textLines возвращает непустые текстовые фрагменты узла по порядку,
// каждый с обрезанными пробелами. Разметка вида «текст<br>текст» даёт
// отдельные строки.
func textLines(n *html.Node) []string {
	var lines []string
	var traverse func(*html.Node)
	traverse = func(node *html.Node) {
		if node.Type == html.TextNode {
			if text := strings.TrimSpace(node.Data); text != "" {
				lines = append(lines, text)
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(n)
	return lines
}

// flatText — весь видимый текст узла одной строкой без пробельной обвязки.
func flatText(n *html.Node) string {
	return strings.Join(textLines(n), " ")
}
