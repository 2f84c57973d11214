package i18n

import "testing"

func TestParseFallsBackToKorean(t *testing.T) {
	cases := map[string]Lang{
		"ko":    Korean,
		"zh":    Chinese,
		"en":    English,
		"":      Korean,
		"fr":    Korean,
		"EN":    Korean,
		"zh_cn": Korean,
	}
	for in, want := range cases {
		if got := Parse(in); got != want {
			t.Errorf("Parse(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestForUnknownUsesDefaultTable(t *testing.T) {
	got := For(Lang("de"))
	want := For(Korean)
	if got != want {
		t.Fatalf("expected Korean table for unknown language")
	}
}

func TestEveryLanguageHasCompleteTable(t *testing.T) {
	for _, l := range Langs() {
		tx := For(l)
		fields := []string{
			tx.AppTitle, tx.NavSearch, tx.NavFavorites, tx.SearchPlaceholder,
			tx.SearchButton, tx.AddFavoriteButton, tx.PreviewTitle, tx.PreviewHint,
			tx.FooterText, tx.NoResult, tx.Temperature, tx.Humidity, tx.Wind,
			tx.FavoritesTitle, tx.FavoritesEmpty, tx.MemoPlaceholder, tx.SaveMemo,
			tx.Delete, tx.ClearAll,
		}
		for i, f := range fields {
			if f == "" {
				t.Errorf("language %s: field %d is empty", l, i)
			}
		}
		if l.Label() == "" {
			t.Errorf("language %s has no label", l)
		}
	}
	if For(English).Wind != "Wind speed" {
		t.Fatalf("unexpected English wind label %q", For(English).Wind)
	}
}

func TestSearchPlaceholderAsksForEnglishNames(t *testing.T) {
	want := map[Lang]string{
		Korean:  "도시 이름을 영어로 입력하세요 (예: Seoul, Tokyo)",
		Chinese: "请输入城市英文名称（例如：Seoul, Tokyo）",
		English: "Enter city name in English (e.g. Seoul, Tokyo)",
	}
	for l, text := range want {
		if got := For(l).SearchPlaceholder; got != text {
			t.Errorf("%s: expected %q, got %q", l, text, got)
		}
	}
}
