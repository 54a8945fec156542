// Package i18n provides static string lookup for the two supported UI
// languages. Keys are enumerated constants checked at compile time; unknown
// or untranslated keys fall back to the English text.
package i18n

// Language is a supported UI language.
type Language string

// Supported languages.
const (
	English Language = "en"
	Arabic  Language = "ar"
)

// ParseLanguage maps a stored preference value to a Language.
func ParseLanguage(s string) (Language, bool) {
	switch Language(s) {
	case English, Arabic:
		return Language(s), true
	default:
		return English, false
	}
}

// Key identifies a translatable message.
type Key string

// Message keys.
const (
	KeyAppName   Key = "app_name"
	KeyTagline   Key = "tagline"
	KeyCurrency  Key = "currency"
	KeyLoading   Key = "loading"
	KeyNoData    Key = "no_data"
	KeyRefresh   Key = "refresh"
	KeySignOut   Key = "sign_out"
	KeyThemeHint Key = "theme_hint"
	KeyLangHint  Key = "lang_hint"

	// Navigation
	KeyNavDashboard   Key = "nav_dashboard"
	KeyNavBudget      Key = "nav_budget"
	KeyNavPrices      Key = "nav_prices"
	KeyNavShopping    Key = "nav_shopping"
	KeyNavInvestments Key = "nav_investments"
	KeyNavAnalytics   Key = "nav_analytics"
	KeyNavProfile     Key = "nav_profile"
	KeyNavHowItWorks  Key = "nav_how_it_works"
	KeyHowItWorksBody Key = "how_it_works_body"
	KeyPrivacyBody    Key = "privacy_body"
	KeyNavPrivacy     Key = "nav_privacy"

	// Auth
	KeyLogin            Key = "login"
	KeyRegister         Key = "register"
	KeyForgotPassword   Key = "forgot_password"
	KeyEmail            Key = "email"
	KeyPassword         Key = "password"
	KeyFullName         Key = "full_name"
	KeySignInGoogle     Key = "sign_in_google"
	KeySignInFacebook   Key = "sign_in_facebook"
	KeyResetSent        Key = "reset_sent"
	KeyErrEmailExists   Key = "err_email_exists"
	KeyErrUserNotFound  Key = "err_user_not_found"
	KeyErrWrongPassword Key = "err_wrong_password"
	KeySuccessRegister  Key = "success_register"

	// Onboarding / profile fields
	KeyFinancialProfile Key = "financial_profile"
	KeyStep             Key = "step"
	KeyOf               Key = "of"
	KeyNext             Key = "next"
	KeyBack             Key = "back"
	KeyConfirm          Key = "confirm"
	KeyMonthlySalary    Key = "monthly_salary"
	KeyFamilyMembers    Key = "family_members"
	KeyMaritalStatus    Key = "marital_status"
	KeyLivingCostLevel  Key = "living_cost_level"
	KeyIncomeStability  Key = "income_stability"
	KeyRent             Key = "rent"
	KeyElectricity      Key = "electricity"
	KeyWater            Key = "water"
	KeyGas              Key = "gas"
	KeyTransportation   Key = "transportation"
	KeyInternet         Key = "internet"
	KeyMobile           Key = "mobile"
	KeyStreaming        Key = "streaming"
	KeyEducation        Key = "education"
	KeyMedical          Key = "medical"
	KeyDebts            Key = "debts"
	KeyAnnualExpenses   Key = "annual_expenses"
	KeyAddDebt          Key = "add_debt"
	KeyAddAnnual        Key = "add_annual"
	KeyDescription      Key = "description"
	KeyMonthlyAmount    Key = "monthly_amount"
	KeyTotalAmount      Key = "total_amount"
	KeyDueDate          Key = "due_date"
	KeyExpectedMonth    Key = "expected_month"
	KeyPriorityLabel    Key = "priority_label"
	KeySavingPriority   Key = "saving_priority"
	KeyRiskTolerance    Key = "risk_tolerance"
	KeyEmergencyFund    Key = "emergency_fund"
	KeyPriorityRanking  Key = "priority_ranking"
	KeyReview           Key = "review"

	// Profile editor
	KeyEdit         Key = "edit"
	KeySave         Key = "save"
	KeyCancel       Key = "cancel"
	KeySavedOK      Key = "saved_ok"
	KeyRequiredRoot Key = "required_root"

	// Views
	KeyTotalIncome     Key = "total_income"
	KeyFixedCosts      Key = "fixed_costs"
	KeyAvailableCash   Key = "available_cash"
	KeyFinancialScore  Key = "financial_score"
	KeySmartBudget     Key = "smart_budget"
	KeyRecalculate     Key = "recalculate"
	KeyBalancing       Key = "balancing"
	KeyScanningMarkets Key = "scanning_markets"
	KeyCuratingList    Key = "curating_list"
	KeyCheckout        Key = "checkout"
	KeyCheckoutDone    Key = "checkout_done"
	KeyEstimatedTotal  Key = "estimated_total"
	KeyMustHave        Key = "must_have"
	KeySafeOptions     Key = "safe_options"
	KeySavingsTrend    Key = "savings_trend"

	// Priority category tags
	KeyCatFood      Key = "cat_food"
	KeyCatTransport Key = "cat_transport"
	KeyCatEmergency Key = "cat_emergency"
	KeyCatSavings   Key = "cat_savings"
	KeyCatInvest    Key = "cat_invest"
	KeyCatPersonal  Key = "cat_personal"
)

// Translator resolves keys for a fixed language. Consumers take it as an
// explicit parameter; there is no ambient global.
type Translator struct {
	lang Language
}

// New creates a translator for the given language.
func New(lang Language) Translator {
	return Translator{lang: lang}
}

// Lang returns the translator's language.
func (t Translator) Lang() Language {
	return t.lang
}

// RTL reports whether the language is written right-to-left.
func (t Translator) RTL() bool {
	return t.lang == Arabic
}

// T resolves a message key. Untranslated keys fall back to English; unknown
// keys render as their raw tag so they are visible in the UI rather than
// silently blank.
func (t Translator) T(k Key) string {
	if t.lang == Arabic {
		if msg, ok := arabic[k]; ok {
			return msg
		}
	}
	if msg, ok := english[k]; ok {
		return msg
	}
	return string(k)
}
