package validation

// Per-route guard pipelines, in the fixed order sanitize → required →
// semantic → domain. The router attaches them through the middleware
// adapter; a failure at any stage means the service layer never runs.

// Signup guards POST /api/auth/signup.
func Signup() []Guard {
	return []Guard{
		SanitizeBody("email", "username", "firstname", "lastname"),
		RequireFields("email", "password"),
		Email(),
		StrongPassword("password"),
		TextMaxLengths(map[string]int{"username": 50, "firstname": 100, "lastname": 100}),
	}
}

// Login guards POST /api/auth/login.
func Login() []Guard {
	return []Guard{
		SanitizeBody("email"),
		RequireFields("email", "password"),
		Email(),
	}
}

// IncomeCreate guards POST /api/incomes.
func IncomeCreate() []Guard {
	return []Guard{
		SanitizeBody("source", "description"),
		RequireFields("amount"),
		DateField("date"),
		IncomeData(),
		CategoryRef(),
	}
}

// IncomeUpdate guards PUT /api/incomes/:id. Everything is optional; any
// supplied field is held to the create rules.
func IncomeUpdate() []Guard {
	return []Guard{
		IDParam("id"),
		SanitizeBody("source", "description"),
		DateField("date"),
		IncomeData(),
		CategoryRef(),
	}
}

// IncomeQuery guards GET /api/incomes list filters.
func IncomeQuery() []Guard {
	return []Guard{DateRange()}
}

// CategoryCreate guards POST /api/categories.
func CategoryCreate() []Guard {
	return []Guard{
		SanitizeBody("category_name", "icon_url"),
		RequireFields("category_name"),
		TextMaxLengths(map[string]int{"category_name": 50}),
		IconURL(),
	}
}

// CategoryUpdate guards PUT /api/categories/:id.
func CategoryUpdate() []Guard {
	return []Guard{
		IDParam("id"),
		SanitizeBody("category_name", "icon_url"),
		RequireFields("category_name"),
		TextMaxLengths(map[string]int{"category_name": 50}),
		IconURL(),
	}
}

// ProfileUpdate guards PUT /api/user/profile.
func ProfileUpdate() []Guard {
	return []Guard{
		SanitizeBody("firstname", "lastname", "username"),
		RequireOneOf("firstname", "lastname", "username"),
		NonEmptyIfPresent("username"),
		TextMaxLengths(map[string]int{"firstname": 100, "lastname": 100, "username": 50}),
	}
}

// PasswordChange guards PATCH /api/user/profile/password.
func PasswordChange() []Guard {
	return []Guard{
		RequireFields("currentPassword", "newPassword"),
		StrongPassword("newPassword"),
	}
}
