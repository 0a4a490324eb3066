package pipeline

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"fms/doc"
	"fms/layout"
	"fms/section"
	"fms/state"
	"fms/style"
)

// Generate lays out the whole document onto a fresh text surface and returns
// it fully rendered.
//
// The build is strictly sequential and two-phased. The body pass walks the
// tree in document order rendering regular content; every listof directive
// it meets performs its reservation right there, claiming the measured span
// ahead of the content that follows, while every captioned block records the
// page it finally landed on. Once the body pass completes and all target
// pages are known, the committed pass re-renders each reserved section into
// its span in the same relative order.
func Generate(ctx context.Context, d *doc.Document, env *state.LocalEnv, log *zap.Logger) (*layout.TextSurface, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg := &env.Cfg.Document

	sheet := style.Default(log)
	if len(env.Stylesheet) > 0 {
		sheet.Append(style.NewParser(log).Parse(env.Stylesheet, "user"))
	}

	bodySize := 10.0
	if v, ok := sheet.Resolve("body", "size"); ok {
		bodySize = v.Value
	}
	headingSize := 14.0
	if v, ok := sheet.Resolve("heading", "size"); ok {
		headingSize = v.Value
	}

	surface := layout.NewTextSurface(cfg.Page.Width, cfg.Page.Height)
	registry := section.NewRegistry(log)
	pages := make(section.PageIndex)

	var walkErr error
	doc.Walk(d, func(n *doc.Node, depth int) bool {
		switch n.Kind {
		case doc.KindSection:
			renderHeading(surface, n, depth, headingSize, bodySize)
			if n.ID != "" {
				pages[n.ID] = surface.Cursor().Page
			}

		case doc.KindParagraph:
			for _, line := range wrapText(surface, n.Text, bodySize) {
				surface.WriteLine(line, bodySize)
			}

		case doc.KindFigure, doc.KindTable, doc.KindExample:
			renderBlock(surface, n, cfg.FigureHeight, bodySize, pages)

		case doc.KindListOf:
			secCfg := cfg.Section(n.List)
			if n.Title != "" {
				secCfg.Title = n.Title
			}
			list := section.NewList(secCfg,
				style.ForSection(sheet, n.List.String()),
				cfg.HeadingFloor, cfg.NumberWidth,
				section.Source(d, doc.ByKind(n.List), log),
				log)
			if err := registry.Reserve(list, surface); err != nil {
				walkErr = err
				return false
			}
		}
		return true
	})
	if walkErr != nil {
		return nil, fmt.Errorf("body pass: %w", walkErr)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ranges, err := registry.Render(surface, pages)
	if err != nil {
		return nil, fmt.Errorf("committed pass: %w", err)
	}

	storeDebugTraces(env, d, registry, ranges)

	log.Debug("Document generated",
		zap.Int("pages", surface.Pages()),
		zap.Int("targets", len(pages)),
		zap.Int("sections", len(registry.Sections())))
	return surface, nil
}

// renderHeading writes a section title, sized down as nesting deepens but
// never below body text size. Untitled sections take no vertical space.
func renderHeading(s *layout.TextSurface, n *doc.Node, depth int, headingSize, bodySize float64) {
	if n.Title == "" {
		return
	}
	size := headingSize - 2*float64(depth-1)
	if size < bodySize {
		size = bodySize
	}
	s.WriteLine(n.Title, size)
}

// renderBlock lays out a captioned block: a fixed-height body kept on one
// page when it fits, caption line underneath. The page the block starts on
// becomes its cross-reference target.
func renderBlock(s *layout.TextSurface, n *doc.Node, blockHeight, size float64, pages section.PageIndex) {
	_, h := s.PageSize()
	need := blockHeight + s.LineHeight(size)
	if c := s.Cursor(); c.Offset > 0 && c.Offset+need > h && need <= h {
		s.BreakPage()
	}

	pages[n.ID] = s.Cursor().Page

	marker := fmt.Sprintf("[%s %s]", n.Kind, n.Src)
	if n.Src == "" {
		marker = fmt.Sprintf("[%s]", n.Kind)
	}
	s.WriteLine(marker, size)
	if rest := blockHeight - s.LineHeight(size); rest > 0 {
		s.Advance(rest)
	}
	if n.Title != "" {
		s.WriteLine(n.Title, size)
	}
}

// wrapText greedily breaks text into lines fitting the surface width.
func wrapText(s layout.Surface, text string, size float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	pageW, _ := s.PageSize()

	var (
		lines []string
		cur   strings.Builder
	)
	for _, w := range words {
		candidate := w
		if cur.Len() > 0 {
			candidate = cur.String() + " " + w
		}
		if s.TextWidth(candidate, size) > pageW && cur.Len() > 0 {
			lines = append(lines, cur.String())
			cur.Reset()
			cur.WriteString(w)
			continue
		}
		cur.Reset()
		cur.WriteString(candidate)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

// storeDebugTraces saves the parsed tree and reservation extents into the
// debug report when one is active.
func storeDebugTraces(env *state.LocalEnv, d *doc.Document, registry *section.Registry, ranges []section.PageRange) {
	if env.Rpt == nil {
		return
	}
	env.Rpt.StoreData(fmt.Sprintf("doc/%s.tree.txt", d.SrcName), []byte(d.String()))

	var sb strings.Builder
	for _, l := range registry.Sections() {
		if l.Skipped() {
			fmt.Fprintf(&sb, "%s: skipped, nothing to list\n", l.Kind)
			continue
		}
		fmt.Fprintf(&sb, "%s: reserved %s\n", l.Kind, l.Reservation().Extent)
	}
	for i, r := range ranges {
		fmt.Fprintf(&sb, "render %d: pages %d..%d\n", i, r.First, r.Last)
	}
	env.Rpt.StoreData(fmt.Sprintf("doc/%s.sections.txt", d.SrcName), []byte(sb.String()))
}
