// Package convert maps Eight business-card export rows onto the 61-column
// Atena Shokunin layout. Per-field normalization failures degrade to empty
// or best-effort values; the only fatal condition is an assembled row that
// does not have exactly 61 cells, which aborts the whole conversion.
package convert

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/samber/lo"

	"github.com/kobune/eightatena/internal/address"
	"github.com/kobune/eightatena/internal/company"
	"github.com/kobune/eightatena/internal/dict"
	"github.com/kobune/eightatena/internal/kana"
	"github.com/kobune/eightatena/internal/person"
	"github.com/kobune/eightatena/internal/textnorm"
)

// EightFixedHeaders are the fixed columns of an Eight export. Anything
// beyond these is a flag column: its header text becomes memo content
// when the cell holds a truthy marker.
var EightFixedHeaders = []string{
	"会社名", "部署名", "役職", "姓", "名", "e-mail", "郵便番号", "住所",
	"TEL会社", "TEL部門", "TEL直通", "Fax", "携帯電話", "URL", "名刺交換日",
}

// AtenaHeaders is the fixed 61-column output layout of Atena Shokunin.
var AtenaHeaders = []string{
	"姓", "名", "姓かな", "名かな", "姓名", "姓名かな",
	"ミドルネーム", "ミドルネームかな", "敬称",
	"ニックネーム", "旧姓", "宛先",
	"自宅〒", "自宅住所1", "自宅住所2", "自宅住所3", "自宅電話",
	"自宅IM ID", "自宅E-mail", "自宅URL", "自宅Social",
	"会社〒", "会社住所1", "会社住所2", "会社住所3", "会社電話",
	"会社IM ID", "会社E-mail", "会社URL", "会社Social",
	"その他〒", "その他住所1", "その他住所2", "その他住所3", "その他電話",
	"その他IM ID", "その他E-mail", "その他URL", "その他Social",
	"会社名かな", "会社名", "部署名1", "部署名2", "役職名",
	"連名", "連名ふりがな", "連名敬称", "連名誕生日",
	"メモ1", "メモ2", "メモ3", "メモ4", "メモ5",
	"備考1", "備考2", "備考3", "誕生日", "性別", "血液型", "趣味", "性格",
}

// SchemaError reports an assembled row whose cell count does not match
// the output header. It indicates an internal defect (a forgotten or
// duplicated column) and always aborts the conversion: a misaligned
// address-book import is worse than a hard failure.
type SchemaError struct {
	Row  int
	Want int
	Got  int
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("row %d: assembled %d cells, want %d", e.Row, e.Got, e.Want)
}

// Stats summarizes one conversion.
type Stats struct {
	Rows int
}

// Converter converts Eight rows using one dictionary snapshot. Build a
// new Converter after a dictionary reload.
type Converter struct {
	splitter *address.Splitter
	phones   *textnorm.PhoneFormatter
	company  *company.Resolver
	person   *person.Resolver
}

// New builds a converter over a dictionary snapshot and transliterator.
func New(t *dict.Tables, tr kana.Transliterator, opts company.Options) *Converter {
	return &Converter{
		splitter: address.NewSplitter(t.BuildingWords.Words),
		phones:   textnorm.NewPhoneFormatter(t.AreaCodes.Words),
		company:  company.NewResolver(t, tr, opts),
		person:   person.NewResolver(t, tr),
	}
}

// memoSlots is how many flagged headers fit in メモ1..メモ5; the overflow
// is newline-joined into 備考1.
const memoSlots = 5

var deptSeparatorRE = regexp.MustCompile(`[／/・,，、|｜>＞ \t　]+`)

// row is one parsed input record: the header-to-value view plus the
// ordered flag-column headers of the file.
type row struct {
	fields map[string]string
	flags  []string
	num    int
}

func (r row) get(key string) string {
	return strings.TrimSpace(r.fields[key])
}

// convertRow assembles the 61-cell output row for one input record.
func (c *Converter) convertRow(r row) ([]string, error) {
	last := r.get("姓")
	first := r.get("名")
	companyName := r.get("会社名")

	reading := c.person.Resolve(last, first)
	companyKana := c.company.Resolve(companyName)

	addr1, addr2 := c.splitAddress(r.get("住所"))
	postal := textnorm.NormalizePostalCode(r.get("郵便番号"))
	phones := c.phones.Normalize(
		r.get("TEL会社"), r.get("TEL部門"), r.get("TEL直通"), r.get("Fax"), r.get("携帯電話"))
	dept1, dept2 := splitDepartment(r.get("部署名"))

	memos, remarks := flaggedMemos(r)

	out := []string{
		last,                       // 姓
		first,                      // 名
		reading.Surname,            // 姓かな
		reading.Given,              // 名かな
		last + first,               // 姓名
		reading.Full,               // 姓名かな
		"", "",                     // ミドルネーム / かな
		"",                         // 敬称
		"", "", "",                 // ニックネーム / 旧姓 / 宛先
		"", "", "", "",             // 自宅〒 / 住所1-3
		"", "", "", "", "",         // 自宅電話 / IM / E-mail / URL / Social
		postal,                     // 会社〒
		addr1,                      // 会社住所1
		addr2,                      // 会社住所2
		"",                         // 会社住所3
		phones,                     // 会社電話
		"",                         // 会社IM ID
		r.get("e-mail"),            // 会社E-mail
		r.get("URL"),               // 会社URL
		"",                         // 会社Social
		"", "", "", "",             // その他〒 / 住所1-3
		"", "", "", "", "",         // その他電話 / IM / E-mail / URL / Social
		companyKana,                // 会社名かな
		companyName,                // 会社名
		dept1,                      // 部署名1
		dept2,                      // 部署名2
		textnorm.ToFullWidth(r.get("役職")), // 役職名
		"", "", "", "",             // 連名系
		memos[0], memos[1], memos[2], memos[3], memos[4],
		remarks, "", "",            // 備考1-3
		"", "", "", "", "",         // 誕生日 / 性別 / 血液型 / 趣味 / 性格
	}
	if len(out) != len(AtenaHeaders) {
		return nil, &SchemaError{Row: r.num, Want: len(AtenaHeaders), Got: len(out)}
	}
	return out, nil
}

// splitAddress runs the splitter; when no building part was found the raw
// address goes entirely into line 1 (a bad split is worse than no split).
func (c *Converter) splitAddress(raw string) (string, string) {
	if strings.TrimSpace(raw) == "" {
		return "", ""
	}
	block, building := c.splitter.Split(raw)
	if building == "" {
		return textnorm.ToFullWidth(strings.TrimSpace(raw)), ""
	}
	return block, building
}

// splitDepartment splits a department path into two halves: the first
// ceil(n/2) tokens and the remainder, each re-joined with a full-width
// space, all characters full-width.
func splitDepartment(dept string) (string, string) {
	if dept == "" {
		return "", ""
	}
	parts := lo.FilterMap(deptSeparatorRE.Split(dept, -1), func(p string, _ int) (string, bool) {
		t := strings.TrimSpace(p)
		return textnorm.ToFullWidth(t), t != ""
	})
	if len(parts) == 0 {
		return "", ""
	}
	head := int(math.Ceil(float64(len(parts)) / 2))
	return strings.Join(parts[:head], "　"), strings.Join(parts[head:], "　")
}

// flaggedMemos maps truthy flag columns to the five memo slots, in input
// header order; slots beyond the fifth are newline-joined for 備考1.
func flaggedMemos(r row) ([memoSlots]string, string) {
	selected := lo.Filter(r.flags, func(h string, _ int) bool {
		return isTruthyFlag(r.fields[h])
	})
	var memos [memoSlots]string
	for i, h := range selected {
		if i >= memoSlots {
			break
		}
		memos[i] = h
	}
	var remarks string
	if len(selected) > memoSlots {
		remarks = strings.Join(selected[memoSlots:], "\n")
	}
	return memos, remarks
}

func isTruthyFlag(v string) bool {
	switch strings.TrimSpace(v) {
	case "1", "1.0":
		return true
	}
	return strings.EqualFold(strings.TrimSpace(v), "true")
}
