package stats

// MotivationalMessage maps a weekly completion percentage to the feedback
// line shown on the dashboard.
func MotivationalMessage(percent float64) string {
	switch {
	case percent == 0:
		return "Let's get started! The first step is always the most important one."
	case percent < 25:
		return "Great start! Keep this up and you'll go far."
	case percent < 50:
		return "You're on the right track! Hold the pace."
	case percent < 75:
		return "More than halfway there. You're crushing it!"
	case percent < 100:
		return "Almost there! A little more effort and the week is done."
	default:
		return "Congratulations! You completed every session this week."
	}
}
