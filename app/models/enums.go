package models

// Program defines the class program track.
type Program string

const (
	ProgramBilingual Program = "bilingual"
	ProgramRegular   Program = "regular"
)

// SessionStatus defines the lifecycle of a lesson session.
type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

// TestType defines the kinds of test events the center runs.
type TestType string

const (
	TestPlacement TestType = "placement"
	TestProgress  TestType = "progress"
	TestFinal     TestType = "final"
)

// Skill defines the language skills a lesson can target.
type Skill string

const (
	SkillReading   Skill = "reading"
	SkillWriting   Skill = "writing"
	SkillListening Skill = "listening"
	SkillSpeaking  Skill = "speaking"
	SkillGrammar   Skill = "grammar"
)
