package bridge

import (
	"context"

	"dress-diary/models"
	"dress-diary/repository"
)

type fakeOutfits struct {
	records  []models.Record
	inserted []models.OutfitDraft
	err      error
}

func (f *fakeOutfits) ListByUser(_ context.Context, _, season string) ([]models.Record, error) {
	if f.err != nil {
		return nil, f.err
	}
	if season == "" {
		return f.records, nil
	}
	var out []models.Record
	for _, rec := range f.records {
		if s, _ := rec["season"].(string); s == season {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeOutfits) Insert(_ context.Context, _ string, draft models.OutfitDraft) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.inserted = append(f.inserted, draft)
	return "outfit-1", nil
}

func (f *fakeOutfits) Delete(context.Context, string, string) error { return f.err }

func (f *fakeOutfits) Count(context.Context, string) (int, error) { return len(f.records), f.err }

type fakeUsers struct {
	user      *models.User
	authErr   error
	updates   int
	lastLogin string
}

func (f *fakeUsers) Create(context.Context, string, string, string) error { return nil }

func (f *fakeUsers) Get(context.Context, string) (*models.User, error) {
	if f.user == nil {
		return nil, repository.ErrNotFound
	}
	u := *f.user
	return &u, nil
}

func (f *fakeUsers) Authenticate(ctx context.Context, username, _ string) (*models.User, error) {
	if f.authErr != nil {
		return nil, f.authErr
	}
	return f.Get(ctx, username)
}

func (f *fakeUsers) UpdateLogin(_ context.Context, _ string, streak int, lastLogin string) error {
	f.updates++
	f.user.Streak = streak
	f.user.LastLogin = lastLogin
	f.lastLogin = lastLogin
	return nil
}

func (f *fakeUsers) SetDarkMode(_ context.Context, _ string, enabled bool) error {
	f.user.DarkMode = enabled
	return nil
}
