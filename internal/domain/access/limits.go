package access

// LimitedRules describe what a trial/limited/locked account may hold.
// A nil *LimitedRules means no restrictions.
type LimitedRules struct {
	MaxClients           int
	MaxProjects          int
	ShowPlatformBranding bool
}

func LimitedRulesFor(state AccessState) *LimitedRules {
	switch state {
	case AccessTrial:
		return &LimitedRules{MaxClients: 3, MaxProjects: 5, ShowPlatformBranding: true}
	case AccessLimited:
		return &LimitedRules{MaxClients: 10, MaxProjects: 15, ShowPlatformBranding: true}
	case AccessLocked:
		return &LimitedRules{MaxClients: 0, MaxProjects: 0, ShowPlatformBranding: true}
	default:
		return nil
	}
}
