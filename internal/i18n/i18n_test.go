package i18n

import (
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestCatalogsCoverEveryKey(t *testing.T) {
	for tag, msgs := range tables {
		for _, key := range Keys() {
			if _, ok := msgs[key]; !ok {
				t.Errorf("%s catalog is missing %s", tag, key)
			}
		}
		if len(msgs) != len(english) {
			t.Errorf("%s catalog has %d messages, English has %d", tag, len(msgs), len(english))
		}
	}
}

func TestTranslatorFormats(t *testing.T) {
	en := New("en")
	if got := en.T(Charges, 3, 5); got != "Charges: 3/5" {
		t.Errorf("Expected %q, got %q", "Charges: 3/5", got)
	}
	if got := en.T(LimitReached, "Pond_Main"); got != "Cast limit reached for Pond_Main!" {
		t.Errorf("Unexpected limit message %q", got)
	}

	ru := New("ru")
	if got := ru.T(Charges, 3, 5); got != "Заряды: 3/5" {
		t.Errorf("Expected Russian charges text, got %q", got)
	}
	if got := ru.T(LocationInfo, "Lake_Deep", 1, 5); !strings.Contains(got, "1/5 забросов") {
		t.Errorf("Unexpected Russian location info %q", got)
	}
}

func TestNewFallsBackToEnglish(t *testing.T) {
	tests := []struct {
		lang string
		want language.Tag
	}{
		{"ru-RU", language.Russian},
		{"de", language.English},
		{"", language.English},
		{"not a tag", language.English},
	}

	for _, tt := range tests {
		if got := New(tt.lang).Language(); got != tt.want {
			t.Errorf("New(%q): expected %s, got %s", tt.lang, tt.want, got)
		}
	}
}
