package tabular

import "strings"

// source sheets label columns with a mix of English and Japanese headers that
// changed across exports; every known alias maps to one canonical name here
var headerAliases = map[string]string{
	"content_id": ColContentID,
	"post_id":    ColContentID,
	"id":         ColContentID,
	"記事id":       ColContentID,

	"url":     ColURL,
	"page":    ColURL,
	"ページurl":  ColURL,
	"記事url":   ColURL,

	"title":  ColTitle,
	"タイトル":   ColTitle,
	"記事タイトル": ColTitle,

	"category": ColCategory,
	"カテゴリ":     ColCategory,
	"カテゴリー":    ColCategory,

	"keyword": ColKeyword,
	"query":   ColKeyword,
	"キーワード":   ColKeyword,
	"対策kw":    ColKeyword,

	"sessions_7d": ColSessions7d,
	"session":     ColSessions7d,
	"セッション":      ColSessions7d,

	"page_views_7d": ColPageViews7d,
	"page_view":     ColPageViews7d,
	"pv":            ColPageViews7d,
	"ページビュー":       ColPageViews7d,

	"sales_7d": ColSales7d,
	"sales":    ColSales7d,
	"売上":       ColSales7d,
	"売上(7日)":   ColSales7d,

	"sales_30d": ColSales30d,
	"売上(30日)":   ColSales30d,

	"cv":             ColConversions,
	"conversions_7d": ColConversions,
	"conversion":     ColConversions,

	"imp":            ColImpressions,
	"impressions_7d": ColImpressions,
	"impressions":    ColImpressions,
	"表示回数":           ColImpressions,

	"click":     ColClicks,
	"clicks_7d": ColClicks,
	"clicks":    ColClicks,
	"クリック数":     ColClicks,

	"avg_position_7d": ColAvgPosition7d,
	"avg_position":    ColAvgPosition7d,
	"平均順位":           ColAvgPosition7d,
	"平均順位(7日)":       ColAvgPosition7d,

	"avg_position_30d": ColAvgPosition30d,
	"平均順位(30日)":       ColAvgPosition30d,

	"last_modified": ColLastModified,
	"updated_at":    ColLastModified,
	"最終更新日":         ColLastModified,
	"更新日":           ColLastModified,
}

// maps a raw source header to its canonical column name; unknown headers pass
// through lowercased so they survive into the output table untouched
func NormalizeHeader(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.TrimPrefix(key, "\uFEFF")

	if canonical, ok := headerAliases[key]; ok {
		return canonical
	}

	return key
}

// normalizes every header in place and returns the canonical column list
func NormalizeHeaders(raw []string) []string {
	out := make([]string, len(raw))
	for i, h := range raw {
		out[i] = NormalizeHeader(h)
	}

	return out
}
