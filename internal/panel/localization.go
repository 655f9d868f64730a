package panel

// Localization manages the history panel's text translations.
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyHistoryLabel  = "history_label"
	KeyClearBtn      = "clear_btn"
	KeyExportHistory = "export_history"
	KeyLoadMore      = "load_more"
	KeyEmptyHistory  = "empty_history"
	KeySearchText    = "search_text"
	KeyCopyAction    = "copy_action"
	KeyDeleteAction  = "delete_action"
	KeyOpenInBrowser = "open_in_browser"
	KeyClearConfirm  = "clear_confirm"
	KeyExportDone    = "export_done"
	KeyExportFailed  = "export_failed"
	KeyLinkCopied    = "link_copied"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. Unknown languages are ignored.
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"zh": "中文",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyHistoryLabel:  "Download History",
		KeyClearBtn:      "Clear All",
		KeyExportHistory: "Export History",
		KeyLoadMore:      "Load More",
		KeyEmptyHistory:  "No download history yet",
		KeySearchText:    "Search history links or status",
		KeyCopyAction:    "Copy Link",
		KeyDeleteAction:  "Delete Record",
		KeyOpenInBrowser: "Open in Browser",
		KeyClearConfirm:  "Are you sure you want to clear all history?",
		KeyExportDone:    "History exported to: %s",
		KeyExportFailed:  "Failed to export history",
		KeyLinkCopied:    "Link copied",
	}

	// Chinese texts
	l.texts["zh"] = map[string]string{
		KeyHistoryLabel:  "下载历史",
		KeyClearBtn:      "清空全部",
		KeyExportHistory: "导出历史",
		KeyLoadMore:      "加载更多",
		KeyEmptyHistory:  "暂无下载历史",
		KeySearchText:    "搜索历史链接或状态",
		KeyCopyAction:    "复制链接",
		KeyDeleteAction:  "删除记录",
		KeyOpenInBrowser: "浏览器打开",
		KeyClearConfirm:  "确定要清空所有历史记录吗？",
		KeyExportDone:    "历史已导出到: %s",
		KeyExportFailed:  "导出历史失败",
		KeyLinkCopied:    "链接已复制",
	}
}
