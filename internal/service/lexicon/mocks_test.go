package lexicon

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/phonogen/internal/domain"
)

var _ lexiconRepo = &lexiconRepoMock{}

type lexiconRepoMock struct {
	CreateLanguageFunc        func(ctx context.Context, lang domain.Language) (*domain.Language, error)
	BulkInsertLexemesFunc     func(ctx context.Context, lexemes []domain.Lexeme) (int, error)
	GetLanguageFunc           func(ctx context.Context, id uuid.UUID) (*domain.Language, error)
	ListLanguagesFunc         func(ctx context.Context, limit, offset int) ([]domain.Language, error)
	ListLexemesFunc           func(ctx context.Context, languageID uuid.UUID, limit, offset int) ([]domain.Lexeme, error)
	DeleteLanguagesBeforeFunc func(ctx context.Context, threshold time.Time) (int64, error)

	calls struct {
		CreateLanguage []struct {
			Lang domain.Language
		}
		BulkInsertLexemes []struct {
			Lexemes []domain.Lexeme
		}
		ListLexemes []struct {
			LanguageID    uuid.UUID
			Limit, Offset int
		}
	}
	lock sync.RWMutex
}

func (mock *lexiconRepoMock) CreateLanguage(ctx context.Context, lang domain.Language) (*domain.Language, error) {
	if mock.CreateLanguageFunc == nil {
		panic("lexiconRepoMock.CreateLanguageFunc: method is nil but lexiconRepo.CreateLanguage was just called")
	}
	mock.lock.Lock()
	mock.calls.CreateLanguage = append(mock.calls.CreateLanguage, struct{ Lang domain.Language }{Lang: lang})
	mock.lock.Unlock()
	return mock.CreateLanguageFunc(ctx, lang)
}

func (mock *lexiconRepoMock) CreateLanguageCalls() []struct{ Lang domain.Language } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.CreateLanguage
}

func (mock *lexiconRepoMock) BulkInsertLexemes(ctx context.Context, lexemes []domain.Lexeme) (int, error) {
	if mock.BulkInsertLexemesFunc == nil {
		panic("lexiconRepoMock.BulkInsertLexemesFunc: method is nil but lexiconRepo.BulkInsertLexemes was just called")
	}
	mock.lock.Lock()
	mock.calls.BulkInsertLexemes = append(mock.calls.BulkInsertLexemes, struct{ Lexemes []domain.Lexeme }{Lexemes: lexemes})
	mock.lock.Unlock()
	return mock.BulkInsertLexemesFunc(ctx, lexemes)
}

func (mock *lexiconRepoMock) BulkInsertLexemesCalls() []struct{ Lexemes []domain.Lexeme } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.BulkInsertLexemes
}

func (mock *lexiconRepoMock) GetLanguage(ctx context.Context, id uuid.UUID) (*domain.Language, error) {
	if mock.GetLanguageFunc == nil {
		panic("lexiconRepoMock.GetLanguageFunc: method is nil but lexiconRepo.GetLanguage was just called")
	}
	return mock.GetLanguageFunc(ctx, id)
}

func (mock *lexiconRepoMock) ListLanguages(ctx context.Context, limit, offset int) ([]domain.Language, error) {
	if mock.ListLanguagesFunc == nil {
		panic("lexiconRepoMock.ListLanguagesFunc: method is nil but lexiconRepo.ListLanguages was just called")
	}
	return mock.ListLanguagesFunc(ctx, limit, offset)
}

func (mock *lexiconRepoMock) ListLexemes(ctx context.Context, languageID uuid.UUID, limit, offset int) ([]domain.Lexeme, error) {
	if mock.ListLexemesFunc == nil {
		panic("lexiconRepoMock.ListLexemesFunc: method is nil but lexiconRepo.ListLexemes was just called")
	}
	mock.lock.Lock()
	mock.calls.ListLexemes = append(mock.calls.ListLexemes, struct {
		LanguageID    uuid.UUID
		Limit, Offset int
	}{languageID, limit, offset})
	mock.lock.Unlock()
	return mock.ListLexemesFunc(ctx, languageID, limit, offset)
}

func (mock *lexiconRepoMock) ListLexemesCalls() []struct {
	LanguageID    uuid.UUID
	Limit, Offset int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListLexemes
}

func (mock *lexiconRepoMock) DeleteLanguagesBefore(ctx context.Context, threshold time.Time) (int64, error) {
	if mock.DeleteLanguagesBeforeFunc == nil {
		panic("lexiconRepoMock.DeleteLanguagesBeforeFunc: method is nil but lexiconRepo.DeleteLanguagesBefore was just called")
	}
	return mock.DeleteLanguagesBeforeFunc(ctx, threshold)
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	return mock.RunInTxFunc(ctx, fn)
}

// passthroughTx runs fn directly, as a committed transaction would.
func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) },
	}
}
