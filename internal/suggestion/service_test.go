package suggestion_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"naamkaran/internal/suggestion"
	"naamkaran/pkg/domain"
	"naamkaran/pkg/serrors"
	mockstorage "naamkaran/pkg/storage/mock"

	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*mockstorage.MockStorage, suggestion.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s := suggestion.New(st)

	return st, s
}

func TestService_List(t *testing.T) {
	st, s := newTestService(t)

	st.EXPECT().Suggestions(gomock.Any()).Return([]domain.Suggestion{
		{Name: "Bodhi", Votes: 20},
		{Name: "Vihaan", Votes: 12},
	}, nil)

	suggestions, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(suggestions) != 2 || suggestions[0].Name != "Bodhi" {
		t.Fatalf("unexpected suggestions: %+v", suggestions)
	}

	// storage error
	st.EXPECT().Suggestions(gomock.Any()).Return(nil, errors.New("boom"))
	if _, err := s.List(context.Background()); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestService_Add(t *testing.T) {
	st, s := newTestService(t)

	st.EXPECT().StoreSuggestion(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sug domain.Suggestion) (*domain.Suggestion, error) {
			if sug.Name != "Aarav" || sug.Meaning != "Peaceful" {
				t.Fatalf("unexpected suggestion: %+v", sug)
			}
			if sug.Votes != 1 {
				t.Fatalf("expected initial vote count 1, got %d", sug.Votes)
			}

			return &sug, nil
		},
	)

	stored, err := s.Add(context.Background(), "  Aarav ", " Peaceful ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored == nil || stored.Name != "Aarav" {
		t.Fatalf("unexpected stored suggestion: %+v", stored)
	}
}

func TestService_Add_Validation(t *testing.T) {
	st, s := newTestService(t)
	st.EXPECT().StoreSuggestion(gomock.Any(), gomock.Any()).Times(0)

	if _, err := s.Add(context.Background(), "   ", "meaning"); !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest for empty name, got %v", err)
	}

	long := strings.Repeat("a", 101)
	if _, err := s.Add(context.Background(), long, ""); !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest for long name, got %v", err)
	}
	if _, err := s.Add(context.Background(), "Aarav", long); !errors.Is(err, serrors.ErrBadRequest) {
		t.Fatalf("expected ErrBadRequest for long meaning, got %v", err)
	}
}

func TestService_Vote(t *testing.T) {
	st, s := newTestService(t)
	id := domain.SuggestionID{}

	// found
	st.EXPECT().VoteForSuggestion(gomock.Any(), id).Return(&domain.Suggestion{Name: "Bodhi", Votes: 21}, nil)
	updated, err := s.Vote(context.Background(), id)
	if err != nil || updated == nil || updated.Votes != 21 {
		t.Fatalf("unexpected: updated=%+v err=%v", updated, err)
	}

	// not found
	st.EXPECT().VoteForSuggestion(gomock.Any(), id).Return(nil, nil)
	if _, err := s.Vote(context.Background(), id); !errors.Is(err, serrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	// storage error
	st.EXPECT().VoteForSuggestion(gomock.Any(), id).Return(nil, errors.New("boom"))
	if _, err := s.Vote(context.Background(), id); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
