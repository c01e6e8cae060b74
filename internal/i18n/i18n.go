package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"

	"github.com/terraincognita07/healthlog/internal/models"
)

//go:embed locales/*.json
var localeFiles embed.FS

type Manager struct {
	defaultLanguage models.Language
	locales         map[models.Language]map[string]string
	supported       []models.Language
	matcher         language.Matcher
}

// NewManager loads the embedded locales. Both en and zh-HK are required.
func NewManager(defaultLanguage string) (*Manager, error) {
	return newManager(defaultLanguage, localeFiles, "locales")
}

func newManager(defaultLanguage string, files fs.FS, dir string) (*Manager, error) {
	manager := &Manager{
		locales: map[models.Language]map[string]string{},
	}

	entries, err := fs.ReadDir(files, dir)
	if err != nil {
		return nil, fmt.Errorf("read locales dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".json" {
			continue
		}

		lang := models.Language(strings.TrimSuffix(entry.Name(), path.Ext(entry.Name())))
		content, err := fs.ReadFile(files, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", lang, err)
		}

		messages := map[string]string{}
		if err := json.Unmarshal(content, &messages); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", lang, err)
		}
		if len(messages) == 0 {
			return nil, fmt.Errorf("locale %s is empty", lang)
		}

		manager.locales[lang] = messages
		manager.supported = append(manager.supported, lang)
	}

	for _, required := range []models.Language{models.LanguageEN, models.LanguageZhHK} {
		if _, ok := manager.locales[required]; !ok {
			return nil, fmt.Errorf("required locale %q missing", required)
		}
	}

	// English first so an unmatched tag falls back to it.
	sort.Slice(manager.supported, func(i, j int) bool {
		if manager.supported[i] == models.LanguageEN {
			return true
		}
		if manager.supported[j] == models.LanguageEN {
			return false
		}
		return manager.supported[i] < manager.supported[j]
	})
	tags := make([]language.Tag, 0, len(manager.supported))
	for _, lang := range manager.supported {
		tags = append(tags, language.Make(string(lang)))
	}
	manager.matcher = language.NewMatcher(tags)

	manager.defaultLanguage = models.LanguageEN
	manager.defaultLanguage = manager.NormalizeLanguage(defaultLanguage)
	return manager, nil
}

func (manager *Manager) DefaultLanguage() models.Language {
	return manager.defaultLanguage
}

func (manager *Manager) SupportedLanguages() []models.Language {
	result := make([]models.Language, len(manager.supported))
	copy(result, manager.supported)
	return result
}

// NormalizeLanguage maps any BCP 47 tag onto a supported language. Every
// Chinese variant resolves to zh-HK, the only Chinese locale shipped.
func (manager *Manager) NormalizeLanguage(raw string) models.Language {
	value := strings.ReplaceAll(strings.TrimSpace(raw), "_", "-")
	if value == "" {
		return manager.defaultLanguage
	}
	tag, err := language.Parse(value)
	if err != nil {
		return manager.defaultLanguage
	}
	return manager.match(tag)
}

func (manager *Manager) DetectFromAcceptLanguage(header string) models.Language {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return manager.defaultLanguage
	}
	for _, tag := range tags {
		if _, _, confidence := manager.matcher.Match(tag); confidence != language.No {
			return manager.match(tag)
		}
		if isChinese(tag) {
			return models.LanguageZhHK
		}
	}
	return manager.defaultLanguage
}

func (manager *Manager) match(tag language.Tag) models.Language {
	_, index, confidence := manager.matcher.Match(tag)
	if confidence == language.No {
		if isChinese(tag) {
			return models.LanguageZhHK
		}
		return manager.defaultLanguage
	}
	return manager.supported[index]
}

func isChinese(tag language.Tag) bool {
	base, _ := tag.Base()
	return base.String() == "zh"
}

func (manager *Manager) Messages(lang models.Language) map[string]string {
	defaultMessages := manager.locales[manager.defaultLanguage]
	targetMessages := manager.locales[manager.NormalizeLanguage(string(lang))]

	result := make(map[string]string, len(defaultMessages)+len(targetMessages))
	for key, value := range defaultMessages {
		result[key] = value
	}
	for key, value := range targetMessages {
		result[key] = value
	}
	return result
}

func (manager *Manager) Translate(lang models.Language, key string) string {
	target := manager.NormalizeLanguage(string(lang))
	if value, ok := manager.locales[target][key]; ok && strings.TrimSpace(value) != "" {
		return value
	}
	if value, ok := manager.locales[manager.defaultLanguage][key]; ok && strings.TrimSpace(value) != "" {
		return value
	}
	return key
}

func (manager *Manager) Translatef(lang models.Language, key string, args ...any) string {
	return fmt.Sprintf(manager.Translate(lang, key), args...)
}

// AppTitle is the personalised title when a custom name is set.
func (manager *Manager) AppTitle(lang models.Language, customName string) string {
	name := strings.TrimSpace(customName)
	if name == "" {
		return manager.Translate(lang, "app.title")
	}
	return manager.Translatef(lang, "settings.customNameTitle", name)
}

// LocalizedName picks the display name of a bilingual record. A missing
// Chinese name falls back to the English one.
func LocalizedName(lang models.Language, name string, nameZh string) string {
	if lang == models.LanguageZhHK && strings.TrimSpace(nameZh) != "" {
		return nameZh
	}
	return name
}

var correlationKeys = map[string]string{
	"onlyDuringPeriod":  "stats.onlyDuringPeriod",
	"onlyOutsidePeriod": "stats.onlyOutsidePeriod",
	"moreDuringPeriod":  "stats.moreCommon",
	"lessDuringPeriod":  "stats.lessCommon",
	"similar":           "stats.similar",
}

// CorrelationKey returns the message key describing a period correlation
// verdict.
func CorrelationKey(verdict string) string {
	if key, ok := correlationKeys[verdict]; ok {
		return key
	}
	return "stats.noCorrelation"
}
