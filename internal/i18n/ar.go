package i18n

var arabic = map[Key]string{
	KeyAppName:   "مدبر",
	KeyTagline:   "مخططك المالي الشخصي",
	KeyCurrency:  "جنيه",
	KeyLoading:   "جاري التحميل...",
	KeyNoData:    "لا توجد بيانات متاحة",
	KeyRefresh:   "تحديث",
	KeySignOut:   "تسجيل الخروج",
	KeyThemeHint: "تبديل المظهر",
	KeyLangHint:  "تبديل اللغة",

	KeyNavDashboard:   "لوحة التحكم",
	KeyNavBudget:      "الميزانية الذكية",
	KeyNavPrices:      "توقعات الأسعار",
	KeyNavShopping:    "التسوق الذكي",
	KeyNavInvestments: "استثمارات آمنة",
	KeyNavAnalytics:   "التحليلات",
	KeyNavProfile:     "الملف الشخصي",
	KeyNavHowItWorks:  "كيف يعمل",
	KeyNavPrivacy:     "الخصوصية",
	KeyHowItWorksBody: "يبني مدبر صورة شهرية من راتبك وفواتيرك الثابتة وديونك والتزاماتك السنوية. يسلم الدخل المتبقي إلى المستشار الذكي الذي يقسمه إلى ميزانية مقترحة ويتوقع أسعار السلع ويعد قائمة تسوق ضمن سقف أسرتك. إذا تعذر الوصول إلى المستشار يعرض التطبيق ببساطة عدم وجود اقتراحات.",
	KeyPrivacyBody:    "ملفك الشخصي محفوظ في قاعدة بيانات محلية على هذا الجهاز. كلمات المرور مخزنة كتجزئات bcrypt ولا تغادر الجهاز أبدا. لا تتضمن طلبات الاستشارة سوى مبالغ مجمعة، ولا تحتوي على اسمك أو بريدك الإلكتروني. تسجيل الخروج يحتفظ ببياناتك المحفوظة، وحذف ملف قاعدة البيانات يزيل كل شيء.",

	KeyLogin:            "تسجيل الدخول",
	KeyRegister:         "إنشاء حساب",
	KeyForgotPassword:   "نسيت كلمة المرور",
	KeyEmail:            "البريد الإلكتروني",
	KeyPassword:         "كلمة المرور",
	KeyFullName:         "الاسم الكامل",
	KeySignInGoogle:     "المتابعة بواسطة جوجل",
	KeySignInFacebook:   "المتابعة بواسطة فيسبوك",
	KeyResetSent:        "تم إرسال رابط إعادة التعيين",
	KeyErrEmailExists:   "هذا البريد الإلكتروني مسجل بالفعل",
	KeyErrUserNotFound:  "لا يوجد حساب لهذا البريد الإلكتروني",
	KeyErrWrongPassword: "كلمة المرور غير صحيحة",
	KeySuccessRegister:  "تم إنشاء الحساب، يمكنك تسجيل الدخول الآن",

	KeyFinancialProfile: "الملف المالي",
	KeyStep:             "خطوة",
	KeyOf:               "من",
	KeyNext:             "التالي",
	KeyBack:             "رجوع",
	KeyConfirm:          "تأكيد",
	KeyMonthlySalary:    "الراتب الشهري",
	KeyFamilyMembers:    "عدد أفراد الأسرة",
	KeyMaritalStatus:    "الحالة الاجتماعية",
	KeyLivingCostLevel:  "مستوى تكلفة المعيشة",
	KeyIncomeStability:  "استقرار الدخل",
	KeyRent:             "الإيجار",
	KeyElectricity:      "الكهرباء",
	KeyWater:            "المياه",
	KeyGas:              "الغاز",
	KeyTransportation:   "المواصلات",
	KeyInternet:         "الإنترنت",
	KeyMobile:           "الموبايل",
	KeyStreaming:        "خدمات البث",
	KeyEducation:        "التعليم",
	KeyMedical:          "الرعاية الطبية",
	KeyDebts:            "الديون",
	KeyAnnualExpenses:   "المصاريف السنوية",
	KeyAddDebt:          "إضافة دين",
	KeyAddAnnual:        "إضافة مصروف سنوي",
	KeyDescription:      "الوصف",
	KeyMonthlyAmount:    "المبلغ الشهري",
	KeyTotalAmount:      "المبلغ الإجمالي",
	KeyDueDate:          "تاريخ الاستحقاق",
	KeyExpectedMonth:    "الشهر المتوقع",
	KeyPriorityLabel:    "الأولوية",
	KeySavingPriority:   "أولوية الادخار",
	KeyRiskTolerance:    "تحمل المخاطر",
	KeyEmergencyFund:    "نسبة صندوق الطوارئ",
	KeyPriorityRanking:  "ترتيب الأولويات الشهرية",
	KeyReview:           "المراجعة والتأكيد",

	KeyEdit:         "تعديل",
	KeySave:         "حفظ",
	KeyCancel:       "إلغاء",
	KeySavedOK:      "تم حفظ الملف الشخصي",
	KeyRequiredRoot: "الراتب وعدد أفراد الأسرة حقول مطلوبة",

	KeyTotalIncome:     "إجمالي الدخل",
	KeyFixedCosts:      "التكاليف الثابتة",
	KeyAvailableCash:   "النقد المتاح",
	KeyFinancialScore:  "التقييم المالي",
	KeySmartBudget:     "التوزيع الذكي",
	KeyRecalculate:     "إعادة الحساب",
	KeyBalancing:       "جاري معالجة الميزانية بالذكاء الاصطناعي...",
	KeyScanningMarkets: "جاري فحص الأسواق...",
	KeyCuratingList:    "جاري تحضير قائمة تسوقك الذكية...",
	KeyCheckout:        "تسجيل المشتريات",
	KeyCheckoutDone:    "تم تسجيل المشتريات",
	KeyEstimatedTotal:  "الإجمالي التقديري",
	KeyMustHave:        "أساسي",
	KeySafeOptions:     "خيارات منخفضة المخاطر",
	KeySavingsTrend:    "تطور المدخرات",

	KeyCatFood:      "الطعام",
	KeyCatTransport: "المواصلات",
	KeyCatEmergency: "الطوارئ",
	KeyCatSavings:   "المدخرات",
	KeyCatInvest:    "الاستثمارات",
	KeyCatPersonal:  "شخصي",
}
