package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"dress-diary/bridge"
	"dress-diary/canvas"
	"dress-diary/metrics"
	"dress-diary/models"
	"dress-diary/utils"
)

// CatalogSource loads the decoded catalog of a user
type CatalogSource interface {
	Catalog(ctx context.Context, user string) ([]models.ClothingItem, error)
}

type compositionSession struct {
	id         string
	user       string
	board      *canvas.Coordinator
	lastActive time.Time
}

// CompositionService keeps the composition sessions, at most one per user
type CompositionService struct {
	mu       sync.Mutex
	sessions map[string]*compositionSession
	byUser   map[string]string

	catalog     CatalogSource
	store       bridge.Bridge
	padding     float64
	idleTimeout time.Duration
	now         func() time.Time
}

// NewCompositionService creates a new CompositionService
func NewCompositionService(catalog CatalogSource, store bridge.Bridge, padding float64, idleTimeout time.Duration) *CompositionService {
	return &CompositionService{
		sessions:    make(map[string]*compositionSession),
		byUser:      make(map[string]string),
		catalog:     catalog,
		store:       store,
		padding:     padding,
		idleTimeout: idleTimeout,
		now:         time.Now,
	}
}

// Open starts a composition session over the current catalog of user,
// abandoning the previous session of that user if any
func (s *CompositionService) Open(ctx context.Context, user string, size canvas.Size) (*models.CompositionView, error) {
	items, err := s.catalog.Catalog(ctx, user)
	if err != nil {
		return nil, err
	}

	sess := &compositionSession{
		id:         uuid.NewString(),
		user:       user,
		board:      canvas.NewCoordinator(size, items, canvas.WithPadding(s.padding)),
		lastActive: s.now(),
	}

	s.mu.Lock()
	if previous, ok := s.byUser[user]; ok {
		delete(s.sessions, previous)
		log.Debugf("🔍 Abandoned composition %s of %s for a new one", previous, user)
	}
	s.sessions[sess.id] = sess
	s.byUser[user] = sess.id
	metrics.SetActiveSessions(len(s.sessions))
	s.mu.Unlock()

	log.Infof("✓ Opened composition %s for %s (%d items available)", sess.id, user, len(items))
	return sess.view(), nil
}

// session returns the session id of user and marks it active
func (s *CompositionService) session(user, id string) (*compositionSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok || sess.user != user {
		return nil, ErrSessionNotFound
	}
	sess.lastActive = s.now()
	return sess, nil
}

// View returns the current state of a session
func (s *CompositionService) View(user, id string) (*models.CompositionView, error) {
	sess, err := s.session(user, id)
	if err != nil {
		return nil, err
	}
	return sess.view(), nil
}

// BeginDrag starts dragging a palette item
func (s *CompositionService) BeginDrag(user, id string, itemID int) (*models.CompositionView, error) {
	sess, err := s.session(user, id)
	if err != nil {
		return nil, err
	}
	if err := sess.board.BeginDrag(itemID); err != nil {
		return nil, err
	}
	return sess.view(), nil
}

// CancelDrag abandons the current drag
func (s *CompositionService) CancelDrag(user, id string) (*models.CompositionView, error) {
	sess, err := s.session(user, id)
	if err != nil {
		return nil, err
	}
	sess.board.CancelDrag()
	return sess.view(), nil
}

// Drop places the item named by payload at (x, y).
// A rejected drop returns canvas.ErrUnresolvablePayload and leaves the board unchanged.
func (s *CompositionService) Drop(ctx context.Context, user, id, payload string, x, y float64) (*models.CompositionView, error) {
	sess, err := s.session(user, id)
	if err != nil {
		return nil, err
	}
	if _, err := sess.board.Drop(ctx, payload, canvas.Point{X: x, Y: y}); err != nil {
		return nil, err
	}
	return sess.view(), nil
}

// RemovePlacement takes an item off the board; absent items are ignored
func (s *CompositionService) RemovePlacement(user, id string, itemID int) (*models.CompositionView, error) {
	sess, err := s.session(user, id)
	if err != nil {
		return nil, err
	}
	if _, err := sess.board.Remove(itemID); err != nil {
		return nil, err
	}
	return sess.view(), nil
}

// Reload refreshes the catalog of a session and drops placements whose item is gone
func (s *CompositionService) Reload(ctx context.Context, user, id string) (*models.CompositionView, error) {
	sess, err := s.session(user, id)
	if err != nil {
		return nil, err
	}
	items, err := s.catalog.Catalog(ctx, user)
	if err != nil {
		return nil, err
	}
	dropped, err := sess.board.Reload(items)
	if err != nil {
		return nil, err
	}
	if len(dropped) > 0 {
		log.Debugf("🔍 Composition %s dropped items no longer in the closet: %v", id, dropped)
	}
	return sess.view(), nil
}

// SetPalette opens or closes the item palette
func (s *CompositionService) SetPalette(user, id string, open bool) (*models.CompositionView, error) {
	sess, err := s.session(user, id)
	if err != nil {
		return nil, err
	}
	sess.board.SetPaletteOpen(open)
	return sess.view(), nil
}

// Save stores the board as an outfit. An empty board fails with
// canvas.ErrEmptyComposition before the store is called. The session is
// closed only once the store confirms the save.
func (s *CompositionService) Save(ctx context.Context, user, id string, req models.SaveCompositionRequest) (string, error) {
	sess, err := s.session(user, id)
	if err != nil {
		return "", err
	}

	itemIDs, layout, err := sess.board.PrepareSave()
	if err != nil {
		if errors.Is(err, canvas.ErrEmptyComposition) {
			metrics.RecordOutfitSave("empty")
		}
		return "", err
	}

	draft, err := s.outfitDraft(req, itemIDs, layout)
	if err != nil {
		sess.board.FinishSave(false)
		metrics.RecordOutfitSave("incomplete")
		return "", err
	}

	outfitID, err := s.store.SaveOutfit(ctx, user, draft)
	if err != nil {
		sess.board.FinishSave(false)
		metrics.RecordOutfitSave("failed")
		log.Errorf("❌ Error saving outfit of composition %s: %v", id, err)
		return "", fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	sess.board.FinishSave(true)
	s.close(id)
	metrics.RecordOutfitSave("saved")
	log.Infof("💾 Composition %s saved as outfit %s", id, outfitID)
	return outfitID, nil
}

func (s *CompositionService) outfitDraft(req models.SaveCompositionRequest, itemIDs []int, layout []models.LayoutEntry) (models.OutfitDraft, error) {
	name := strings.TrimSpace(req.Name)
	season := strings.TrimSpace(req.Season)
	if name == "" || season == "" {
		return models.OutfitDraft{}, fmt.Errorf("%w: name and season are required", ErrIncompleteDetails)
	}

	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = utils.FormatDMY(s.now())
	} else if _, err := utils.ParseDMY(date); err != nil {
		return models.OutfitDraft{}, fmt.Errorf("%w: %v", ErrIncompleteDetails, err)
	}

	return models.OutfitDraft{
		Name:      name,
		DateAdded: date,
		Season:    season,
		ItemIDs:   itemIDs,
		Layout:    layout,
	}, nil
}

// Abandon discards a session
func (s *CompositionService) Abandon(user, id string) error {
	if _, err := s.session(user, id); err != nil {
		return err
	}
	s.close(id)
	return nil
}

func (s *CompositionService) close(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[id]; ok {
		delete(s.sessions, id)
		if s.byUser[sess.user] == id {
			delete(s.byUser, sess.user)
		}
	}
	metrics.SetActiveSessions(len(s.sessions))
}

// PruneIdle abandons sessions idle for longer than the idle timeout and
// returns how many were removed
func (s *CompositionService) PruneIdle() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.idleTimeout)
	pruned := 0
	for id, sess := range s.sessions {
		if sess.lastActive.Before(cutoff) {
			delete(s.sessions, id)
			if s.byUser[sess.user] == id {
				delete(s.byUser, sess.user)
			}
			pruned++
		}
	}
	metrics.SetActiveSessions(len(s.sessions))
	return pruned
}

// ActiveSessions returns the number of open sessions
func (s *CompositionService) ActiveSessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

func (sess *compositionSession) view() *models.CompositionView {
	snap := sess.board.Snapshot()

	placements := make([]models.PlacementView, len(snap.Placements))
	for i, p := range snap.Placements {
		placements[i] = models.PlacementView{
			ItemID: p.ItemID,
			Item:   models.NewClothingItemResponse(p.Item),
			X:      p.Position.X,
			Y:      p.Position.Y,
		}
	}

	available := make([]models.ClothingItemResponse, len(snap.Available))
	for i, item := range snap.Available {
		available[i] = models.NewClothingItemResponse(item)
	}

	return &models.CompositionView{
		SessionID:      sess.id,
		DragState:      snap.DragState.String(),
		PaletteVisible: snap.PaletteVisible,
		Width:          snap.Size.Width,
		Height:         snap.Size.Height,
		Placements:     placements,
		AvailableItems: available,
	}
}
