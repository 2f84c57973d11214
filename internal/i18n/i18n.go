// Package i18n holds the static UI string tables for the supported languages.
package i18n

// Lang is a UI language code.
type Lang string

const (
	Korean  Lang = "ko"
	Chinese Lang = "zh"
	English Lang = "en"
)

// Default is the language used on a fresh load and for unrecognized codes.
const Default = Korean

// Langs returns the supported languages in switcher order.
func Langs() []Lang {
	return []Lang{Korean, Chinese, English}
}

// Parse maps a code to a Lang, falling back to Default.
func Parse(code string) Lang {
	switch Lang(code) {
	case Korean, Chinese, English:
		return Lang(code)
	default:
		return Default
	}
}

// Label is the name shown on the language switch button.
func (l Lang) Label() string {
	switch l {
	case Chinese:
		return "中文"
	case English:
		return "EN"
	default:
		return "한국어"
	}
}

// Texts is the full set of UI strings for one language.
type Texts struct {
	AppTitle          string
	NavSearch         string
	NavFavorites      string
	SearchPlaceholder string
	SearchButton      string
	AddFavoriteButton string
	PreviewTitle      string
	PreviewHint       string
	FooterText        string

	NoResult    string
	Temperature string
	Humidity    string
	Wind        string

	FavoritesTitle  string
	FavoritesEmpty  string
	MemoPlaceholder string
	SaveMemo        string
	Delete          string
	ClearAll        string
}

var tables = map[Lang]Texts{
	Korean: {
		AppTitle:          "WeatherNow 날씨 조회",
		NavSearch:         "날씨 검색",
		NavFavorites:      "즐겨찾기 도시",
		SearchPlaceholder: "도시 이름을 영어로 입력하세요 (예: Seoul, Tokyo)",
		SearchButton:      "검색",
		AddFavoriteButton: "현재 도시 즐겨찾기에 추가",
		PreviewTitle:      "즐겨찾기 도시 (미리보기)",
		PreviewHint:       `자세히 보려면 위의 "즐겨찾기 도시" 메뉴를 선택하세요.`,
		FooterText:        "WeatherNow © 2025",

		NoResult:    "검색 결과 없음",
		Temperature: "온도",
		Humidity:    "습도",
		Wind:        "풍속",

		FavoritesTitle:  "즐겨찾기 도시 관리",
		FavoritesEmpty:  "아직 추가된 즐겨찾기 도시가 없습니다.",
		MemoPlaceholder: "메모를 입력하세요 (예: 여행, 고향, 친구 집)",
		SaveMemo:        "저장",
		Delete:          "삭제",
		ClearAll:        "전체 삭제",
	},
	Chinese: {
		AppTitle:          "WeatherNow 天气查询",
		NavSearch:         "天气查询",
		NavFavorites:      "收藏城市",
		SearchPlaceholder: "请输入城市英文名称（例如：Seoul, Tokyo）",
		SearchButton:      "搜索",
		AddFavoriteButton: "将当前城市加入收藏",
		PreviewTitle:      "收藏城市（预览）",
		PreviewHint:       "如需更多操作，请点击上方的“收藏城市”菜单。",
		FooterText:        "WeatherNow © 2025",

		NoResult:    "暂无结果",
		Temperature: "温度",
		Humidity:    "湿度",
		Wind:        "风速",

		FavoritesTitle:  "收藏城市管理",
		FavoritesEmpty:  "还没有添加任何收藏城市。",
		MemoPlaceholder: "请输入备注（例如：旅行、家乡、朋友在这里）",
		SaveMemo:        "保存",
		Delete:          "删除",
		ClearAll:        "清空全部",
	},
	English: {
		AppTitle:          "WeatherNow Weather Search",
		NavSearch:         "Weather Search",
		NavFavorites:      "Favorite Cities",
		SearchPlaceholder: "Enter city name in English (e.g. Seoul, Tokyo)",
		SearchButton:      "Search",
		AddFavoriteButton: "Add current city to favorites",
		PreviewTitle:      "Favorite Cities (Preview)",
		PreviewHint:       `For more actions, open the "Favorite Cities" page above.`,
		FooterText:        "WeatherNow © 2025",

		NoResult:    "No result",
		Temperature: "Temperature",
		Humidity:    "Humidity",
		Wind:        "Wind speed",

		FavoritesTitle:  "Favorite Cities",
		FavoritesEmpty:  "No favorite cities yet.",
		MemoPlaceholder: "Add a note (e.g. trip, hometown, friend lives here)",
		SaveMemo:        "Save",
		Delete:          "Delete",
		ClearAll:        "Clear all",
	},
}

// For returns the string table for l. Unknown languages get the Default table.
func For(l Lang) Texts {
	if t, ok := tables[l]; ok {
		return t
	}
	return tables[Default]
}
