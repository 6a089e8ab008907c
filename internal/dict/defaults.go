package dict

// Built-in fallbacks used when a dictionary file is missing or corrupt.
// They are intentionally small: the JSON files are the place to grow the
// vocabulary.

var defaultBuildingWords = []string{
	"ビルディング", "ビル", "タワーズ", "タワー", "シティ", "ヒルズ",
	"スクエア", "ガーデン", "プレイス", "コート", "テラス", "センター",
	"プラザ", "レジデンス", "マンション", "ハイツ", "コーポ", "メゾン",
	"パーク", "パレス", "キャッスル", "ステーション", "モール", "パルコ",
	"オフィス", "ウォール", "カレッジ", "ドーム", "ハウス", "スタジアム",
	"アネックス", "会館", "庁舎",
}

// Legal-entity designators removed before company kana lookup. Matching is
// longest-first, so the full 一般社団法人 form always wins over its parts.
var defaultCorpTerms = []string{
	"株式会社", "有限会社", "合同会社", "合資会社", "合名会社", "相互会社",
	"清算株式会社",
	"一般社団法人", "一般財団法人", "公益社団法人", "公益財団法人",
	"特定非営利活動法人", "NPO法人", "ＮＰＯ法人", "中間法人",
	"有限責任中間法人", "特例民法法人",
	"学校法人", "医療法人社団", "医療法人財団", "医療法人", "宗教法人",
	"社会福祉法人",
	"国立大学法人", "公立大学法人", "地方独立行政法人", "独立行政法人",
	"特殊法人",
	"有限責任事業組合", "投資事業有限責任組合", "特定目的会社", "特定目的信託",
	"(株)", "（株）", "(有)", "（有）", "(同)", "（同）", "(名)", "（名）",
	"(資)", "（資）", "(医)", "（医）", "(学)", "（学）", "(福)", "（福）",
	"(宗)", "（宗）",
}

// Minimal NTT area-code table, longest codes first at use sites. The full
// table ships as data/area_codes.json.
var defaultAreaCodes = []string{
	"03", "06",
	"011", "017", "018", "019", "022", "023", "024", "025", "026", "027",
	"028", "029", "042", "043", "044", "045", "046", "047", "048", "052",
	"053", "054", "055", "058", "059", "072", "073", "075", "076", "077",
	"078", "079", "082", "083", "084", "086", "087", "088", "089", "092",
	"093", "095", "096", "097", "098", "099",
	"0422", "0466", "0467", "0742", "0743", "0798",
}

var defaultCompanyJP = CompanyDict{
	Normalize: NormalizeFlags{NFKC: true, StripSpaces: true, UnifySlash: true, UnifyMiddleDot: true},
	Overrides: map[string]string{},
	Tokens:    map[string]string{},
}

var defaultCompanyEN = CompanyDict{
	Normalize: NormalizeFlags{NFKC: true, Lower: true, UnifySlash: true},
	Overrides: map[string]string{},
	Tokens:    map[string]string{},
}
