package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyView             = "view"
	KeyLanguage         = "language"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyClose            = "close"
	KeyBrowse           = "browse"
	KeySettingsSaved    = "settings_saved"
	KeyOrbitSpeed       = "orbit_speed"
	KeyAutoRotate       = "auto_rotate"
	KeyVerboseLogging   = "verbose_logging"
	KeyShowFPS          = "show_fps"
	KeyContentFile      = "content_file"
	KeyRestartRequired  = "restart_required"
	KeyLoadingTitle     = "loading_title"
	KeyLoadingMessage   = "loading_message"
	KeyLoadingChrome    = "loading_chrome"
	KeyNavigate         = "navigate"
	KeyExplore          = "explore"
	KeyHoverVisit       = "hover_visit"
	KeyForceFull        = "force_full"
	KeyResetOverride    = "reset_override"
	KeyReload           = "reload"
	KeyErrorDetails     = "error_details"
	KeyQuickSolutions   = "quick_solutions"
	KeyGetInTouch       = "get_in_touch"
	KeyEmail            = "email"
	KeyGitHub           = "github"
	KeyLinkedIn         = "linkedin"
	KeyWebsite          = "website"
	KeyCopiedToClip     = "copied_to_clipboard"
	KeyCannotOpenLink   = "cannot_open_link"
	KeyContentReloaded  = "content_reloaded"
	KeyPlanetNotFound   = "planet_not_found"
	KeyStaticSubtitle   = "static_subtitle"
	KeyRecommendedLabel = "recommended_label"
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

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

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

// GetAvailableLanguages returns available languages
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"vi": "Tiếng Việt",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "NV's Portfolio",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyView:             "View",
		KeyLanguage:         "Language",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyClose:            "Close",
		KeyBrowse:           "Browse",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyOrbitSpeed:       "Orbit Speed",
		KeyAutoRotate:       "Planets orbit automatically",
		KeyVerboseLogging:   "Verbose logging",
		KeyShowFPS:          "Show frame rate",
		KeyContentFile:      "Content File",
		KeyRestartRequired:  "Some changes apply after restart",
		KeyLoadingTitle:     "Portfolio Loading",
		KeyLoadingMessage:   "Initializing 3D environment...",
		KeyLoadingChrome:    "Chrome detected in secure environment - checking 3D compatibility...",
		KeyNavigate:         "Navigate",
		KeyExplore:          "Explore the solar system",
		KeyHoverVisit:       "Click to visit %s",
		KeyForceFull:        "Try 3D Anyway",
		KeyResetOverride:    "Reset Rendering Override",
		KeyReload:           "Reload",
		KeyErrorDetails:     "Error Details",
		KeyQuickSolutions:   "Quick Solutions:",
		KeyGetInTouch:       "Get in Touch",
		KeyEmail:            "Email",
		KeyGitHub:           "GitHub",
		KeyLinkedIn:         "LinkedIn",
		KeyWebsite:          "Website",
		KeyCopiedToClip:     "Link copied to clipboard. Paste it into the address bar.",
		KeyCannotOpenLink:   "Could not open link",
		KeyContentReloaded:  "Content reloaded",
		KeyPlanetNotFound:   "Section not found",
		KeyStaticSubtitle:   "Welcome! I'm a full-stack developer passionate about creating amazing digital experiences.",
		KeyRecommendedLabel: "Recommended",
	}

	// Vietnamese texts
	l.texts["vi"] = map[string]string{
		KeyAppTitle:         "Portfolio của NV",
		KeySettings:         "Cài đặt",
		KeyFile:             "Tệp",
		KeyView:             "Hiển thị",
		KeyLanguage:         "Ngôn ngữ",
		KeySave:             "Lưu",
		KeyCancel:           "Hủy",
		KeyClose:            "Đóng",
		KeyBrowse:           "Chọn",
		KeySettingsSaved:    "Đã lưu cài đặt!",
		KeyOrbitSpeed:       "Tốc độ quỹ đạo",
		KeyAutoRotate:       "Hành tinh tự quay",
		KeyVerboseLogging:   "Ghi log chi tiết",
		KeyShowFPS:          "Hiện tốc độ khung hình",
		KeyContentFile:      "Tệp nội dung",
		KeyRestartRequired:  "Một số thay đổi có hiệu lực sau khi khởi động lại",
		KeyLoadingTitle:     "Đang tải Portfolio",
		KeyLoadingMessage:   "Đang khởi tạo môi trường 3D...",
		KeyLoadingChrome:    "Phát hiện Chrome trong môi trường bảo mật - đang kiểm tra khả năng hiển thị 3D...",
		KeyNavigate:         "Điều hướng",
		KeyExplore:          "Khám phá hệ mặt trời",
		KeyHoverVisit:       "Nhấn để xem %s",
		KeyForceFull:        "Vẫn thử 3D",
		KeyResetOverride:    "Bỏ ép hiển thị 3D",
		KeyReload:           "Tải lại",
		KeyErrorDetails:     "Chi tiết lỗi",
		KeyQuickSolutions:   "Giải pháp nhanh:",
		KeyGetInTouch:       "Liên hệ",
		KeyEmail:            "Email",
		KeyGitHub:           "GitHub",
		KeyLinkedIn:         "LinkedIn",
		KeyWebsite:          "Trang web",
		KeyCopiedToClip:     "Đã sao chép liên kết. Hãy dán vào thanh địa chỉ.",
		KeyCannotOpenLink:   "Không thể mở liên kết",
		KeyContentReloaded:  "Đã tải lại nội dung",
		KeyPlanetNotFound:   "Không tìm thấy mục",
		KeyStaticSubtitle:   "Xin chào! Tôi là lập trình viên full-stack, đam mê tạo ra những trải nghiệm số tuyệt vời.",
		KeyRecommendedLabel: "Khuyên dùng",
	}
}
