package i18n

var english = map[Key]string{
	KeyAppName:   "Modaber",
	KeyTagline:   "Your personal finance planner",
	KeyCurrency:  "EGP",
	KeyLoading:   "Loading...",
	KeyNoData:    "No data available",
	KeyRefresh:   "Refresh",
	KeySignOut:   "Sign out",
	KeyThemeHint: "toggle theme",
	KeyLangHint:  "toggle language",

	KeyNavDashboard:   "Dashboard",
	KeyNavBudget:      "Smart Budget",
	KeyNavPrices:      "Price Predictions",
	KeyNavShopping:    "Smart Shopping",
	KeyNavInvestments: "Safe Investments",
	KeyNavAnalytics:   "Analytics",
	KeyNavProfile:     "Profile",
	KeyNavHowItWorks:  "How It Works",
	KeyNavPrivacy:     "Privacy",
	KeyHowItWorksBody: "Modaber builds a monthly picture from your salary, fixed bills, debts and annual commitments. The remaining income is handed to the AI advisor, which splits it into a suggested budget, forecasts commodity prices and drafts a grocery list within your household's ceiling. If the advisor is unreachable the app simply shows no suggestions.",
	KeyPrivacyBody:    "Your profile lives in a local database on this machine. Passwords are stored as bcrypt hashes and never leave the device. Advisory requests contain aggregate amounts only, never your name, email or account details. Signing out keeps your saved credentials; deleting the database file removes everything.",

	KeyLogin:            "Login",
	KeyRegister:         "Create Account",
	KeyForgotPassword:   "Forgot password",
	KeyEmail:            "Email",
	KeyPassword:         "Password",
	KeyFullName:         "Full name",
	KeySignInGoogle:     "Continue with Google",
	KeySignInFacebook:   "Continue with Facebook",
	KeyResetSent:        "Reset link sent (check your inbox)",
	KeyErrEmailExists:   "This email is already registered",
	KeyErrUserNotFound:  "No account found for this email",
	KeyErrWrongPassword: "Incorrect password",
	KeySuccessRegister:  "Account created, you can sign in now",

	KeyFinancialProfile: "Financial Profile",
	KeyStep:             "Step",
	KeyOf:               "of",
	KeyNext:             "Next",
	KeyBack:             "Back",
	KeyConfirm:          "Confirm",
	KeyMonthlySalary:    "Monthly salary",
	KeyFamilyMembers:    "Family members",
	KeyMaritalStatus:    "Marital status",
	KeyLivingCostLevel:  "Living cost level",
	KeyIncomeStability:  "Income stability",
	KeyRent:             "Rent",
	KeyElectricity:      "Electricity",
	KeyWater:            "Water",
	KeyGas:              "Gas",
	KeyTransportation:   "Transportation",
	KeyInternet:         "Internet",
	KeyMobile:           "Mobile",
	KeyStreaming:        "Streaming services",
	KeyEducation:        "Education",
	KeyMedical:          "Medical",
	KeyDebts:            "Debts",
	KeyAnnualExpenses:   "Annual expenses",
	KeyAddDebt:          "Add debt",
	KeyAddAnnual:        "Add annual expense",
	KeyDescription:      "Description",
	KeyMonthlyAmount:    "Monthly amount",
	KeyTotalAmount:      "Total amount",
	KeyDueDate:          "Due date",
	KeyExpectedMonth:    "Expected month",
	KeyPriorityLabel:    "Priority",
	KeySavingPriority:   "Saving priority",
	KeyRiskTolerance:    "Risk tolerance",
	KeyEmergencyFund:    "Emergency fund %",
	KeyPriorityRanking:  "Monthly priority ranking",
	KeyReview:           "Review & confirm",

	KeyEdit:         "Edit",
	KeySave:         "Save",
	KeyCancel:       "Cancel",
	KeySavedOK:      "Profile saved",
	KeyRequiredRoot: "Salary and family members are required",

	KeyTotalIncome:     "Total income",
	KeyFixedCosts:      "Fixed costs",
	KeyAvailableCash:   "Available cash",
	KeyFinancialScore:  "Financial score",
	KeySmartBudget:     "Smart distribution",
	KeyRecalculate:     "Recalculate",
	KeyBalancing:       "AI is balancing your sheets...",
	KeyScanningMarkets: "Scanning markets...",
	KeyCuratingList:    "Curating your smart grocery list...",
	KeyCheckout:        "Log purchases",
	KeyCheckoutDone:    "Purchases logged",
	KeyEstimatedTotal:  "Estimated total",
	KeyMustHave:        "Must-have",
	KeySafeOptions:     "Curated low-risk options",
	KeySavingsTrend:    "Savings progression",

	KeyCatFood:      "Food",
	KeyCatTransport: "Transport",
	KeyCatEmergency: "Emergency",
	KeyCatSavings:   "Savings",
	KeyCatInvest:    "Investments",
	KeyCatPersonal:  "Personal",
}
