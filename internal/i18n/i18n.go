// Package i18n holds the player-facing message catalogs.
package i18n

import (
	"fmt"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys.
const (
	Charges         = "hud.charges"
	Scanning        = "hud.scanning"
	LimitReached    = "notify.limit_reached"
	NoCharges       = "notify.no_charges"
	TooFar          = "notify.too_far"
	TooClose        = "notify.too_close"
	NotOnPond       = "notify.not_on_pond"
	Disabled        = "notify.disabled"
	UnknownLocation = "notify.unknown_location"
	LocationInfo    = "notify.location_info"
	ChargesAdded    = "notify.charges_added"
	LimitsReset     = "notify.limits_reset"
	LocatorsRemoved = "notify.locators_removed"
	LocatorLanded   = "notify.locator_landed"
	ControlsHint    = "hud.controls"
)

var english = map[string]string{
	Charges:         "Charges: %d/%d",
	Scanning:        "Scanning %s",
	LimitReached:    "Cast limit reached for %s!",
	NoCharges:       "No research charges available!",
	TooFar:          "Too far to cast: %.1fm",
	TooClose:        "Too close to cast: %.1fm",
	NotOnPond:       "Click not on pond",
	Disabled:        "Casting is disabled here",
	UnknownLocation: "Unknown location: %s",
	LocationInfo:    "Location %s: %d/%d casts",
	ChargesAdded:    "Added charges: %d",
	LimitsReset:     "Location limits reset",
	LocatorsRemoved: "Locators removed",
	LocatorLanded:   "Locator hit the water!",
	ControlsHint:    "Click: cast  WASD: move  C: charge  R: reset  X: remove  I: info",
}

var russian = map[string]string{
	Charges:         "Заряды: %d/%d",
	Scanning:        "Сканирование: %s",
	LimitReached:    "Лимит забросов достигнут для %s!",
	NoCharges:       "Нет зарядов исследования!",
	TooFar:          "Слишком далеко для заброса: %.1fм",
	TooClose:        "Слишком близко для заброса: %.1fм",
	NotOnPond:       "Клик не по водоёму",
	Disabled:        "Здесь нельзя забрасывать",
	UnknownLocation: "Неизвестная локация: %s",
	LocationInfo:    "Локация %s: %d/%d забросов",
	ChargesAdded:    "Добавлено зарядов: %d",
	LimitsReset:     "Лимиты локаций сброшены",
	LocatorsRemoved: "Локаторы убраны",
	LocatorLanded:   "Локатор попал в воду!",
	ControlsHint:    "ЛКМ: заброс  WASD: ход  C: заряд  R: сброс  X: убрать  I: инфо",
}

var tables = map[language.Tag]map[string]string{
	language.English: english,
	language.Russian: russian,
}

var cat = mustBuild()

func mustBuild() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for tag, msgs := range tables {
		for key, msg := range msgs {
			if err := b.SetString(tag, key, msg); err != nil {
				panic(fmt.Sprintf("i18n: %s %s: %v", tag, key, err))
			}
		}
	}
	return b
}

// Translator formats catalog messages for one language.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a translator for lang ("en", "ru", "ru-RU", ...). Languages
// without a catalog fall back to English.
func New(lang string) *Translator {
	supported := Supported()
	_, i, _ := language.NewMatcher(supported).Match(language.Make(lang))
	tag := supported[i]
	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}
}

// T formats the message stored under key.
func (t *Translator) T(key string, args ...any) string {
	return t.printer.Sprintf(key, args...)
}

// Language returns the resolved language tag.
func (t *Translator) Language() language.Tag { return t.tag }

// Supported lists the languages with a catalog, English first.
func Supported() []language.Tag {
	tags := make([]language.Tag, 0, len(tables))
	for tag := range tables {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if tags[i] == language.English {
			return true
		}
		if tags[j] == language.English {
			return false
		}
		return tags[i].String() < tags[j].String()
	})
	return tags
}

// Keys returns every message key, sorted.
func Keys() []string {
	keys := make([]string, 0, len(english))
	for key := range english {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
