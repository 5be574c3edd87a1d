package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrAmountNegative        = errors.New("the amount must not be negative")
	ErrCategoryNameNotUnique = errors.New("the category name must be unique for the owner")
	ErrCategoryNameMissing   = errors.New("the category name must not be empty")
	ErrCategoryIconMissing   = errors.New("the category icon must be set")
	ErrGoalAmountNotPositive = errors.New("the goal target must be positive")
	ErrGoalNameNotUnique     = errors.New("the goal name must be unique for the owner")
	ErrReminderTextMissing   = errors.New("the reminder text must not be empty")
	ErrRuleMatchMissing      = errors.New("the rule match pattern must not be empty")
	ErrRuleCategoryMissing   = errors.New("the rule must name a category to assign")
	ErrUserEmailNotUnique    = errors.New("a user with this email already exists")
)
