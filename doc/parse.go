package doc

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"fms/config"
)

// XML parsing for the document authoring format. Parsing is exhaustive and
// strict about structure but tolerant about metadata - a captioned block
// without a caption is kept, repair happens later during entry collection.

type parser struct {
	baseDir string
	visited map[string]bool
	autoID  int
	log     *zap.Logger
}

// Parse reads a document from r. Included sub-documents are loaded relative
// to baseDir.
func Parse(r io.Reader, srcName, baseDir string, log *zap.Logger) (*Document, error) {
	if log == nil {
		log = zap.NewNop()
	}
	p := &parser{baseDir: baseDir, visited: make(map[string]bool), log: log}
	return p.parse(r, srcName)
}

// ParseFile reads a document from path, resolving includes relative to its
// directory.
func ParseFile(path string, log *zap.Logger) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open document: %w", err)
	}
	defer f.Close()
	return Parse(f, filepath.Base(path), filepath.Dir(path), log)
}

func (p *parser) parse(r io.Reader, srcName string) (*Document, error) {
	tree := etree.NewDocument()
	// Old documents are not always UTF-8, sniff the encoding the same way a
	// browser would.
	tree.ReadSettings.CharsetReader = charset.NewReaderLabel

	if _, err := tree.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("unable to parse document XML (%s): %w", srcName, err)
	}

	root := tree.Root()
	if root == nil {
		return nil, fmt.Errorf("document has no root element (%s)", srcName)
	}
	if root.Tag != "document" {
		return nil, fmt.Errorf("unexpected root element %q (%s)", root.Tag, srcName)
	}

	d := &Document{
		Title:   root.SelectAttrValue("title", ""),
		Lang:    root.SelectAttrValue("lang", ""),
		SrcName: srcName,
	}

	nodes, err := p.parseNodes(root)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", srcName, err)
	}
	d.Nodes = nodes

	p.log.Debug("Parsed document", zap.String("source", srcName), zap.String("title", d.Title), zap.Int("top level nodes", len(d.Nodes)))
	return d, nil
}

func (p *parser) parseNodes(parent *etree.Element) ([]*Node, error) {
	var nodes []*Node
	for _, child := range parent.ChildElements() {
		n, err := p.parseNode(child)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func (p *parser) parseNode(el *etree.Element) (*Node, error) {
	switch el.Tag {
	case "section":
		children, err := p.parseNodes(el)
		if err != nil {
			return nil, err
		}
		return &Node{
			Kind:     KindSection,
			ID:       el.SelectAttrValue("id", ""),
			Title:    el.SelectAttrValue("title", ""),
			Children: children,
		}, nil

	case "p":
		return &Node{Kind: KindParagraph, Text: el.Text()}, nil

	case "figure", "table", "example":
		kind := KindFigure
		switch el.Tag {
		case "table":
			kind = KindTable
		case "example":
			kind = KindExample
		}
		n := &Node{
			Kind:  kind,
			ID:    el.SelectAttrValue("id", ""),
			Title: el.SelectAttrValue("caption", ""),
			Src:   el.SelectAttrValue("src", ""),
		}
		if n.ID == "" {
			// cross-reference targets need stable identity
			p.autoID++
			n.ID = fmt.Sprintf("%s-%d", el.Tag, p.autoID)
		}
		return n, nil

	case "listof":
		kind, err := config.ParseSectionKind(el.SelectAttrValue("kind", ""))
		if err != nil {
			return nil, fmt.Errorf("listof: %w", err)
		}
		return &Node{
			Kind:  KindListOf,
			List:  kind,
			Title: el.SelectAttrValue("title", ""),
		}, nil

	case "include":
		href := el.SelectAttrValue("href", "")
		if href == "" {
			return nil, fmt.Errorf("include without href")
		}
		sub, err := p.include(href)
		if err != nil {
			return nil, err
		}
		return &Node{Kind: KindInclude, Src: href, Sub: sub}, nil

	default:
		return nil, fmt.Errorf("unexpected element %q", el.Tag)
	}
}

func (p *parser) include(href string) (*Document, error) {
	path := filepath.Join(p.baseDir, filepath.FromSlash(href))
	if p.visited[path] {
		return nil, fmt.Errorf("circular include of %q", href)
	}
	p.visited[path] = true

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open included document %q: %w", href, err)
	}
	defer f.Close()

	return p.parse(f, href)
}
