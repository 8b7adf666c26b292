package parameter

// Scoring
const (
	// PassiveScoreRate is survival score per second; accumulated
	// fractionally and only floored at presentation/report time
	PassiveScoreRate = 5.0

	BaseKillScore = 10
)

// Session reporting
const (
	// NameMaxLength caps a submitted player name after trimming
	NameMaxLength = 16

	// LeaderboardTopN is the size of the pre-fetched ranked list a
	// finished run is qualified against
	LeaderboardTopN = 10
)
