package ui

import "shelfmate/internal/models"

// Translations holds all user-facing text for one language.
type Translations map[string]string

// T returns the string table for the given language. Unknown languages fall
// back to English.
func T(lang models.Language) Translations {
	if lang == models.LangHindi {
		return translationsHI
	}
	return translationsEN
}

var translationsEN = Translations{
	// Signup
	"signup.title":    "🔐 Sign Up",
	"signup.username": "Create Username",
	"signup.password": "Create Password",
	"signup.success":  "Account created. Please login.",

	// Login
	"login.title":    "🔑 Login",
	"login.username": "Username",
	"login.password": "Password",
	"login.remember": "Remember Me",
	"login.error":    "Invalid credentials.",
	"login.signup":   "go to sign up",

	// Language selection (deliberately bilingual)
	"language.title": "🌐 Choose Language / भाषा चुनें",

	// Welcome
	"welcome.title":    "👋 Welcome, %s!",
	"welcome.body":     "You are now logged in. Let's explore your library 📚",
	"welcome.continue": "Continue to Menu",

	// Main menu
	"menu.title":   "📋 Main Menu",
	"menu.tracker": "📚 Book Tracker",
	"menu.logout":  "🚪 Logout",

	// Tracker home
	"tracker.title": "📖 Book Tracker Menu",
	"tracker.add":   "➕ Add New Book",
	"tracker.list":  "📚 View Your Books",
	"tracker.back":  "⬅️ Back to Main Menu",

	// Book form
	"book.title":    "Book Title",
	"book.pages":    "Pages Read",
	"book.total":    "Total Pages",
	"book.status":   "Status",
	"book.deadline": "Deadline (YYYY-MM-DD)",
	"book.favorite": "Favorite ⭐",

	// Add view
	"add.title":   "➕ Add New Book",
	"add.success": "Book '%s' added!",

	// List view
	"list.title":         "📚 Your Book List",
	"list.search":        "Search by Title",
	"list.filter.status": "Filter by Status",
	"list.filter.fav":    "⭐ Show Only Favorites",
	"list.empty":         "No books found with current filters.",
	"list.updated":       "Book updated.",
	"list.deleted":       "Book deleted.",

	// Edit view
	"edit.title": "✏️ Edit Book",
}

var translationsHI = Translations{
	// Signup
	"signup.title":    "🔐 खाता बनाएं",
	"signup.username": "उपयोगकर्ता नाम बनाएं",
	"signup.password": "पासवर्ड बनाएं",
	"signup.success":  "खाता बन गया। कृपया लॉगिन करें।",

	// Login
	"login.title":    "🔑 लॉगिन",
	"login.username": "उपयोगकर्ता नाम",
	"login.password": "पासवर्ड",
	"login.remember": "मुझे याद रखें",
	"login.error":    "गलत लॉगिन विवरण।",
	"login.signup":   "खाता बनाएं",

	// Language selection
	"language.title": "🌐 Choose Language / भाषा चुनें",

	// Welcome
	"welcome.title":    "👋 स्वागत है, %s!",
	"welcome.body":     "आप सफलतापूर्वक लॉगिन हो गए हैं। अपनी लाइब्रेरी देखें 📚",
	"welcome.continue": "मेनू पर जाएं",

	// Main menu
	"menu.title":   "📋 मुख्य मेनू",
	"menu.tracker": "📚 पुस्तक ट्रैकर",
	"menu.logout":  "🚪 लॉगआउट",

	// Tracker home
	"tracker.title": "📖 पुस्तक ट्रैकर मेनू",
	"tracker.add":   "➕ नई पुस्तक जोड़ें",
	"tracker.list":  "📚 अपनी पुस्तकें देखें",
	"tracker.back":  "⬅️ मुख्य मेनू पर वापस",

	// Book form
	"book.title":    "पुस्तक का शीर्षक",
	"book.pages":    "पढ़े गए पृष्ठ",
	"book.total":    "कुल पृष्ठ",
	"book.status":   "स्थिति",
	"book.deadline": "समय सीमा (YYYY-MM-DD)",
	"book.favorite": "पसंदीदा ⭐",

	// Add view
	"add.title":   "➕ नई पुस्तक जोड़ें",
	"add.success": "पुस्तक '%s' जोड़ी गई!",

	// List view
	"list.title":         "📚 आपकी पुस्तक सूची",
	"list.search":        "शीर्षक से खोजें",
	"list.filter.status": "स्थिति के अनुसार छांटें",
	"list.filter.fav":    "⭐ केवल पसंदीदा दिखाएं",
	"list.empty":         "वर्तमान फ़िल्टर से कोई पुस्तक नहीं मिली।",
	"list.updated":       "पुस्तक अपडेट हुई।",
	"list.deleted":       "पुस्तक हटाई गई।",

	// Edit view
	"edit.title": "✏️ पुस्तक संपादित करें",
}
