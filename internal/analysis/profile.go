package analysis

import "github.com/sonyahq/sleep-coach/internal/domain"

// melatoninAdviceAge is the age from which melatonin production advice
// applies.
const melatoninAdviceAge = 45

// profileRecommendations produces static advice keyed purely by the user's
// demographic and lifestyle profile. It has no diary dependency and always
// runs, regardless of history length.
func profileRecommendations(user domain.User) Result {
	var recs []string

	if user.Age >= melatoninAdviceAge {
		recs = append(recs,
			"At your age, melatonin (the sleep hormone) is produced less actively. Try:\n"+
				"- Getting more natural light during the day\n"+
				"- Discussing melatonin supplements with your doctor\n"+
				"- Keeping a strict sleep schedule")
	}

	if user.Gender == domain.GenderFemale {
		recs = append(recs,
			"Women are often more sensitive to circadian rhythm changes. Try:\n"+
				"- A stable sleep schedule, even on weekends\n"+
				"- Relaxation techniques during PMS\n"+
				"- A darker and cooler bedroom")
	}

	// Sedentary takes precedence when a label somehow matches both.
	if user.LifestyleContains(domain.LifestyleSedentary) {
		recs = append(recs,
			"Your sedentary lifestyle can affect your sleep quality. Even light activity helps:\n"+
				"- A 10-minute walk after dinner\n"+
				"- Stretching before bed\n"+
				"- A standing desk during the day")
	} else if user.LifestyleContains(domain.LifestyleActive) {
		recs = append(recs,
			"Even with an active lifestyle, keep in mind:\n"+
				"- Intense workouts within 3 hours of bedtime can make falling asleep harder\n"+
				"- Recovery practices (yoga, stretching) in the evening\n"+
				"- Enough magnesium and protein in your diet")
	}

	return findings(AnalyzerProfile, recs)
}
