package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/edukit/edu-console-api/internal/store"
	appErrors "github.com/edukit/edu-console-api/pkg/errors"
)

// Preference keys stored as raw strings, not JSON documents.
const (
	ThemeKey    = "theme"
	LanguageKey = "language"

	defaultTheme    = "light"
	defaultLanguage = "en"
)

// Preferences is the pair of display settings the console persists.
type Preferences struct {
	Theme    string `json:"theme"`
	Language string `json:"language"`
}

// SettingsService reads and writes the display preferences.
type SettingsService struct {
	store  *store.Adapter
	logger *zap.Logger
}

// NewSettingsService constructs a SettingsService instance.
func NewSettingsService(adapter *store.Adapter, logger *zap.Logger) *SettingsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{store: adapter, logger: logger}
}

// Get returns the stored preferences, falling back to defaults for absent
// keys.
func (s *SettingsService) Get(ctx context.Context) (*Preferences, error) {
	theme, found, err := s.store.String(ctx, ThemeKey)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load theme")
	}
	if !found || theme == "" {
		theme = defaultTheme
	}

	language, found, err := s.store.String(ctx, LanguageKey)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load language")
	}
	if !found || language == "" {
		language = defaultLanguage
	}

	return &Preferences{Theme: theme, Language: language}, nil
}

// SetTheme persists the theme choice.
func (s *SettingsService) SetTheme(ctx context.Context, theme string) error {
	if theme != "light" && theme != "dark" {
		return appErrors.Clone(appErrors.ErrValidation, "theme must be light or dark")
	}
	if err := s.store.SetString(ctx, ThemeKey, theme); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store theme")
	}
	return nil
}

// SetLanguage persists the language choice.
func (s *SettingsService) SetLanguage(ctx context.Context, language string) error {
	if language == "" {
		return appErrors.Clone(appErrors.ErrValidation, "language is required")
	}
	if err := s.store.SetString(ctx, LanguageKey, language); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store language")
	}
	return nil
}
