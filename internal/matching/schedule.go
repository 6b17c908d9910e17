package matching

// scoreSchedule is a table lookup on the sleep-schedule pair: same value
// scores 100, one flexible side scores 80, opposite fixed values (early
// bird vs night owl) score 30.
func scoreSchedule(a, b ProfileView) (int, []Fragment) {
	as, bs := a.Lifestyle.SleepSchedule, b.Lifestyle.SleepSchedule

	switch {
	case as == bs:
		reason := "Same sleep schedule"
		switch as {
		case SleepEarlyBird:
			reason = "Both early birds - synchronized morning routines"
		case SleepNightOwl:
			reason = "Both night owls - late night compatibility"
		}
		return 100, []Fragment{{Dimension: DimSchedule, Reason: reason}}
	case as == SleepFlexible || bs == SleepFlexible:
		return 80, []Fragment{{Dimension: DimSchedule, Reason: "Slight difference in sleep schedule"}}
	default:
		return 30, []Fragment{{Dimension: DimSchedule, Reason: "Opposite sleep schedules - potential noise conflicts"}}
	}
}
