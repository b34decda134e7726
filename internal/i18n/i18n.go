// Package i18n provides the localized strings of the terminal UI.
//
// Message catalogs are TOML files embedded from locales/ and loaded into a
// go-i18n bundle with English as the default language.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Message IDs used by the UI.
const (
	MsgAppTitle       = "app_title"
	MsgLoading        = "loading"
	MsgLoginTitle     = "login_title"
	MsgSignupTitle    = "signup_title"
	MsgHomeTitle      = "home_title"
	MsgFieldName      = "field_name"
	MsgFieldEmail     = "field_email"
	MsgFieldPassword  = "field_password"
	MsgLoginHint      = "login_hint"
	MsgSignupHint     = "signup_hint"
	MsgHomeHint       = "home_hint"
	MsgSwitchToSignup = "switch_to_signup"
	MsgSwitchToLogin  = "switch_to_login"
	MsgHomeGreeting   = "home_greeting"
	MsgHomeSignedInAs = "home_signed_in_as"
	MsgCopied         = "copied"
	MsgCopyFailed     = "copy_failed"

	MsgErrInvalidCredentials = "err_invalid_credentials"
	MsgErrDuplicateEmail     = "err_duplicate_email"
	MsgErrStorage            = "err_storage_unavailable"
	MsgErrNameRequired       = "err_name_required"
	MsgErrPasswordRequired   = "err_password_required"
	MsgErrPasswordMinLength  = "err_password_min_length"
	MsgErrUnknown            = "err_unknown"

	MsgBuildInfoTitle = "build_info_title"
	MsgBuildVersion   = "build_version"
	MsgBuildDate      = "build_date"
	MsgBuildCommit    = "build_commit"
)

// ErrUnsupportedLanguage is returned for a language tag that cannot be parsed.
var ErrUnsupportedLanguage = errors.New("unsupported language")

//go:embed locales/*.toml
var localeFS embed.FS

var supportedTags = []language.Tag{
	language.English,
	language.Russian,
}

var matcher = language.NewMatcher(supportedTags)

// Supported returns the languages with an embedded catalog.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Localizer renders message IDs in one language.
type Localizer struct {
	tag       language.Tag
	localizer *goi18n.Localizer
}

// NewLocalizer loads the embedded catalogs and returns a Localizer for the
// closest supported match of lang. Unknown but well-formed tags fall back to
// English.
func NewLocalizer(lang string) (*Localizer, error) {
	requested, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}

	bundle, err := newBundle(localeFS)
	if err != nil {
		return nil, err
	}

	_, idx, _ := matcher.Match(requested)
	tag := supportedTags[idx]

	return &Localizer{
		tag:       tag,
		localizer: goi18n.NewLocalizer(bundle, tag.String(), language.English.String()),
	}, nil
}

func newBundle(fsys fs.FS) (*goi18n.Bundle, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(fsys, "locales/*.toml")
	if err != nil {
		return nil, fmt.Errorf("error listing locale files: %w", err)
	}

	for _, file := range files {
		if _, err = bundle.LoadMessageFileFS(fsys, file); err != nil {
			return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
		}
	}

	return bundle, nil
}

// Tag returns the language the Localizer renders.
func (l *Localizer) Tag() language.Tag {
	return l.tag
}

// T renders the message id. Unknown ids are returned as is.
func (l *Localizer) T(id string) string {
	return l.Tf(id, nil)
}

// Tf renders the message id with template data.
func (l *Localizer) Tf(id string, data map[string]any) string {
	msg, err := l.localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}
