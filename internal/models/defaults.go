package models

import "time"

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
)

func DefaultAilmentTypes(now time.Time) []AilmentType {
	ailments := []AilmentType{
		{ID: "headache", Name: "Headache / Migraine", NameZh: "頭痛 / 偏頭痛", Icon: "noto:face-with-head-bandage"},
		{ID: "stomach", Name: "Stomach Pain", NameZh: "肚痛", Icon: "noto:nauseated-face"},
		{ID: "fatigue", Name: "Fatigue", NameZh: "疲倦", Icon: "noto:sleeping-face"},
		{ID: "allergy", Name: "Allergies", NameZh: "敏感", Icon: "noto:sneezing-face"},
	}
	for index := range ailments {
		ailments[index].IsDefault = true
		ailments[index].IsActive = true
		ailments[index].CreatedAt = now
		ailments[index].UpdatedAt = now
	}
	return ailments
}

func DefaultTriggerTypes(now time.Time) []TriggerType {
	triggers := []TriggerType{
		{ID: "caffeine", Name: "Caffeine", NameZh: "咖啡因", Icon: "noto:hot-beverage", Category: TriggerCategorySubstance},
		{ID: "food", Name: "Food", NameZh: "食物", Icon: "noto:hamburger", Category: TriggerCategoryFood},
		{ID: "sleep", Name: "Poor Sleep", NameZh: "瞓得唔好", Icon: "noto:sleeping-face", Category: TriggerCategoryLifestyle},
		{ID: "stress", Name: "Stress", NameZh: "壓力", Icon: "noto:anxious-face-with-sweat", Category: TriggerCategoryLifestyle},
		{ID: "weather", Name: "Weather", NameZh: "天氣", Icon: "noto:sun-behind-cloud", Category: TriggerCategoryEnvironment},
		{ID: "medication", Name: "Medication", NameZh: "藥物", Icon: "noto:pill", Category: TriggerCategorySubstance},
		{ID: "alcohol", Name: "Alcohol", NameZh: "酒精", Icon: "noto:wine-glass", Category: TriggerCategorySubstance},
		{ID: "dairy", Name: "Dairy", NameZh: "奶製品", Icon: "noto:glass-of-milk", Category: TriggerCategoryFood},
		{ID: "gluten", Name: "Gluten", NameZh: "麩質", Icon: "noto:bread", Category: TriggerCategoryFood},
		{ID: "spicy", Name: "Spicy Food", NameZh: "辣嘢", Icon: "noto:hot-pepper", Category: TriggerCategoryFood},
	}
	for index := range triggers {
		triggers[index].IsDefault = true
		triggers[index].IsActive = true
		triggers[index].CreatedAt = now
		triggers[index].UpdatedAt = now
	}
	return triggers
}

func DefaultSettings(now time.Time) AppSettings {
	return AppSettings{
		ID:        SettingsID,
		Language:  LanguageEN,
		Theme:     ThemeLight,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
