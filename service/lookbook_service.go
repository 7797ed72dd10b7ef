package service

import (
	"bytes"
	"context"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"dress-diary/collage"
	"dress-diary/models"
	"dress-diary/suggestion"
	"dress-diary/utils"
)

//go:embed templates/lookbook.html
var templateFiles embed.FS

var lookbookTemplate = template.Must(template.ParseFS(templateFiles, "templates/lookbook.html"))

const (
	outfitsPerPage = 6
	lookbookSpan   = 360
	pdfTimeout     = 30 * time.Second
)

// lookbookEntry is one outfit card of the lookbook
type lookbookEntry struct {
	Name       string
	Season     string
	DateAdded  string
	ItemCount  int
	PreviewSrc template.URL
}

// OutfitLister lists the decoded outfits of a user
type OutfitLister interface {
	List(ctx context.Context, user, season string) ([]models.SavedOutfit, error)
}

// LookbookService renders all outfits of a user as an HTML or PDF lookbook
type LookbookService struct {
	outfits     OutfitLister
	suggestions *suggestion.Engine
	chromePath  string
	now         func() time.Time
}

// NewLookbookService creates a new LookbookService
func NewLookbookService(outfits OutfitLister, suggestions *suggestion.Engine, chromePath string) *LookbookService {
	return &LookbookService{
		outfits:     outfits,
		suggestions: suggestions,
		chromePath:  chromePath,
		now:         time.Now,
	}
}

// detectChromePath detects the path to Chrome/Chromium executable
// Checks the configured path first, then common installation paths
func detectChromePath(configured string) string {
	if configured != "" {
		if _, err := os.Stat(configured); err == nil {
			return configured
		}
	}

	// Common paths to check
	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/snap/bin/chromium",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// paginateOutfits splits entries into pages of outfitsPerPage
func paginateOutfits(entries []lookbookEntry) [][]lookbookEntry {
	var pages [][]lookbookEntry

	for i := 0; i < len(entries); i += outfitsPerPage {
		end := i + outfitsPerPage
		if end > len(entries) {
			end = len(entries)
		}
		pages = append(pages, entries[i:end])
	}

	return pages
}

// RenderHTML renders the lookbook of user with collage previews inlined
func (s *LookbookService) RenderHTML(ctx context.Context, user string) (string, error) {
	outfits, err := s.outfits.List(ctx, user, "")
	if err != nil {
		return "", err
	}

	entries := make([]lookbookEntry, 0, len(outfits))
	for _, outfit := range outfits {
		preview, err := collage.RenderPNG(outfitImages(outfit), lookbookSpan)
		if err != nil {
			return "", fmt.Errorf("failed to render preview of outfit %s: %w", outfit.ID, err)
		}
		entries = append(entries, lookbookEntry{
			Name:       outfit.Name,
			Season:     s.suggestions.Title(outfit.Season),
			DateAdded:  outfit.DateAdded,
			ItemCount:  len(outfit.ItemIDs),
			PreviewSrc: template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(preview)),
		})
	}

	templateData := struct {
		Title     string
		Count     int
		Generated string
		Pages     [][]lookbookEntry
	}{
		Title:     fmt.Sprintf("%s's lookbook", user),
		Count:     len(entries),
		Generated: utils.FormatDMY(s.now()),
		Pages:     paginateOutfits(entries),
	}

	var buf bytes.Buffer
	if err := lookbookTemplate.Execute(&buf, templateData); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.String(), nil
}

// GeneratePDF prints the HTML lookbook of user to an A4 PDF with headless Chrome
func (s *LookbookService) GeneratePDF(ctx context.Context, user string) ([]byte, error) {
	chromePath := detectChromePath(s.chromePath)
	if chromePath == "" {
		return nil, ErrPDFUnavailable
	}

	html, err := s.RenderHTML(ctx, user)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, pdfTimeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.ExecPath(chromePath),
		chromedp.NoSandbox, // Required for running in Docker/containers
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	chromedpCtx, chromedpCancel := chromedp.NewContext(allocCtx)
	defer chromedpCancel()

	var pdfBuf []byte
	err = chromedp.Run(chromedpCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 8.27" x 11.69"
			pdfBuf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithMarginTop(0).
				WithMarginBottom(0).
				WithMarginLeft(0).
				WithMarginRight(0).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	log.Infof("✓ Lookbook PDF generated for %s (%d bytes)", user, len(pdfBuf))
	return pdfBuf, nil
}
