package service

import (
	"context"
	"fmt"

	"dress-diary/bridge"
	"dress-diary/collage"
	"dress-diary/decoder"
	"dress-diary/models"
	"dress-diary/repository"
)

// OutfitService serves decoded outfits and their previews
type OutfitService struct {
	store   bridge.Store
	decoder *decoder.RecordDecoder
}

// NewOutfitService creates a new OutfitService
func NewOutfitService(store bridge.Store, dec *decoder.RecordDecoder) *OutfitService {
	return &OutfitService{store: store, decoder: dec}
}

// List returns the outfits of user, optionally only those of one season
func (s *OutfitService) List(ctx context.Context, user, season string) ([]models.SavedOutfit, error) {
	var (
		records []models.Record
		err     error
	)
	if season == "" {
		records, err = s.store.FetchOutfits(ctx, user)
	} else {
		records, err = s.store.FetchAndFilterOutfits(ctx, user, season)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch outfits: %w", err)
	}
	return s.decoder.DecodeOutfits(records), nil
}

// Get returns one outfit of user
func (s *OutfitService) Get(ctx context.Context, user, id string) (models.SavedOutfit, error) {
	outfits, err := s.List(ctx, user, "")
	if err != nil {
		return models.SavedOutfit{}, err
	}
	for _, outfit := range outfits {
		if outfit.ID == id {
			return outfit, nil
		}
	}
	return models.SavedOutfit{}, repository.ErrNotFound
}

// Delete removes one outfit
func (s *OutfitService) Delete(ctx context.Context, user, id string) error {
	return s.store.DeleteOutfit(ctx, user, id)
}

// Preview renders the collage of an outfit as a span x span PNG
func (s *OutfitService) Preview(ctx context.Context, user, id string, span int) ([]byte, error) {
	outfit, err := s.Get(ctx, user, id)
	if err != nil {
		return nil, err
	}
	return collage.RenderPNG(outfitImages(outfit), span)
}

// TodaySuggestion returns the outfit suggested for today
func (s *OutfitService) TodaySuggestion(ctx context.Context, user string) (models.SavedOutfit, bool, error) {
	rec, ok, err := s.store.TodaySuggestion(ctx, user)
	if err != nil || !ok {
		return models.SavedOutfit{}, false, err
	}
	outfit, err := s.decoder.DecodeOutfit(rec)
	if err != nil {
		return models.SavedOutfit{}, false, err
	}
	return outfit, true, nil
}

func outfitImages(outfit models.SavedOutfit) []models.Image {
	images := make([]models.Image, 0, len(outfit.Items))
	for _, item := range outfit.Items {
		images = append(images, item.Image)
	}
	return images
}
