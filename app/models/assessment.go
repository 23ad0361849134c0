package models

import "time"

// StudentAssessment is one belt-test attempt. Every technique score is
// independently nullable so an in-progress assessment can be scored
// category by category; scores are decimals in [0.0, 10.0] with one
// decimal place.
type StudentAssessment struct {
	ID              string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentID       string           `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	InstructorID    *string          `json:"instructor_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	AssessmentDate  time.Time        `json:"assessment_date" gorm:"not null"`
	TargetBeltRank  *string          `json:"target_belt_rank,omitempty" gorm:"index"`
	CertificateName *string          `json:"certificate_name,omitempty"`
	BeltSize        *string          `json:"belt_size,omitempty"`
	Status          AssessmentStatus `json:"status" gorm:"not null;default:'in_progress';index"`
	OverallScore    *float64         `json:"overall_score,omitempty" gorm:"type:decimal(4,1)"`
	Passed          *bool            `json:"passed,omitempty"`
	ExaminerNotes   *string          `json:"examiner_notes,omitempty" gorm:"type:text"`
	CreatedAt       time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
	Student         *Student         `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`

	// Forms (hyungs)
	GeochoHyungIlBu  *float64 `json:"geocho_hyung_il_bu,omitempty" gorm:"type:decimal(3,1)"`
	GeochoHyungIBu   *float64 `json:"geocho_hyung_i_bu,omitempty" gorm:"type:decimal(3,1)"`
	GeochoHyungSamBu *float64 `json:"geocho_hyung_sam_bu,omitempty" gorm:"type:decimal(3,1)"`
	PyongAnChoDan    *float64 `json:"pyong_an_cho_dan,omitempty" gorm:"type:decimal(3,1)"`
	PyongAnIDan      *float64 `json:"pyong_an_i_dan,omitempty" gorm:"type:decimal(3,1)"`
	PyongAnSamDan    *float64 `json:"pyong_an_sam_dan,omitempty" gorm:"type:decimal(3,1)"`
	PyongAnSaDan     *float64 `json:"pyong_an_sa_dan,omitempty" gorm:"type:decimal(3,1)"`
	PyongAnODan      *float64 `json:"pyong_an_o_dan,omitempty" gorm:"type:decimal(3,1)"`
	BassaiDae        *float64 `json:"bassai_dae,omitempty" gorm:"type:decimal(3,1)"`

	// Blocks
	LowBlock           *float64 `json:"low_block,omitempty" gorm:"type:decimal(3,1)"`
	HighBlock          *float64 `json:"high_block,omitempty" gorm:"type:decimal(3,1)"`
	InsideBlock        *float64 `json:"inside_block,omitempty" gorm:"type:decimal(3,1)"`
	OutsideBlock       *float64 `json:"outside_block,omitempty" gorm:"type:decimal(3,1)"`
	KnifeHandBlock     *float64 `json:"knife_hand_block,omitempty" gorm:"type:decimal(3,1)"`
	DoubleForearmBlock *float64 `json:"double_forearm_block,omitempty" gorm:"type:decimal(3,1)"`
	XBlock             *float64 `json:"x_block,omitempty" gorm:"type:decimal(3,1)"`
	PalmBlock          *float64 `json:"palm_block,omitempty" gorm:"type:decimal(3,1)"`

	// Kicks
	FrontKick         *float64 `json:"front_kick,omitempty" gorm:"type:decimal(3,1)"`
	RoundKick         *float64 `json:"round_kick,omitempty" gorm:"type:decimal(3,1)"`
	SideKick          *float64 `json:"side_kick,omitempty" gorm:"type:decimal(3,1)"`
	BackKick          *float64 `json:"back_kick,omitempty" gorm:"type:decimal(3,1)"`
	HookKick          *float64 `json:"hook_kick,omitempty" gorm:"type:decimal(3,1)"`
	CrescentKick      *float64 `json:"crescent_kick,omitempty" gorm:"type:decimal(3,1)"`
	AxeKick           *float64 `json:"axe_kick,omitempty" gorm:"type:decimal(3,1)"`
	SpinningBackKick  *float64 `json:"spinning_back_kick,omitempty" gorm:"type:decimal(3,1)"`
	InsideOutsideKick *float64 `json:"inside_outside_kick,omitempty" gorm:"type:decimal(3,1)"`
	OutsideInsideKick *float64 `json:"outside_inside_kick,omitempty" gorm:"type:decimal(3,1)"`

	// Jump kicks
	JumpFrontKick    *float64 `json:"jump_front_kick,omitempty" gorm:"type:decimal(3,1)"`
	JumpRoundKick    *float64 `json:"jump_round_kick,omitempty" gorm:"type:decimal(3,1)"`
	JumpSideKick     *float64 `json:"jump_side_kick,omitempty" gorm:"type:decimal(3,1)"`
	JumpBackKick     *float64 `json:"jump_back_kick,omitempty" gorm:"type:decimal(3,1)"`
	JumpSpinningKick *float64 `json:"jump_spinning_kick,omitempty" gorm:"type:decimal(3,1)"`

	// Punches and hand strikes
	StraightPunch   *float64 `json:"straight_punch,omitempty" gorm:"type:decimal(3,1)"`
	ReversePunch    *float64 `json:"reverse_punch,omitempty" gorm:"type:decimal(3,1)"`
	Jab             *float64 `json:"jab,omitempty" gorm:"type:decimal(3,1)"`
	DoublePunch     *float64 `json:"double_punch,omitempty" gorm:"type:decimal(3,1)"`
	TriplePunch     *float64 `json:"triple_punch,omitempty" gorm:"type:decimal(3,1)"`
	BackFist        *float64 `json:"back_fist,omitempty" gorm:"type:decimal(3,1)"`
	HammerFist      *float64 `json:"hammer_fist,omitempty" gorm:"type:decimal(3,1)"`
	RidgeHand       *float64 `json:"ridge_hand,omitempty" gorm:"type:decimal(3,1)"`
	KnifeHandStrike *float64 `json:"knife_hand_strike,omitempty" gorm:"type:decimal(3,1)"`
	SpearHand       *float64 `json:"spear_hand,omitempty" gorm:"type:decimal(3,1)"`

	// Stances
	ReadyStance    *float64 `json:"ready_stance,omitempty" gorm:"type:decimal(3,1)"`
	FrontStance    *float64 `json:"front_stance,omitempty" gorm:"type:decimal(3,1)"`
	BackStance     *float64 `json:"back_stance,omitempty" gorm:"type:decimal(3,1)"`
	HorseStance    *float64 `json:"horse_stance,omitempty" gorm:"type:decimal(3,1)"`
	CatStance      *float64 `json:"cat_stance,omitempty" gorm:"type:decimal(3,1)"`
	FightingStance *float64 `json:"fighting_stance,omitempty" gorm:"type:decimal(3,1)"`
	CrossStance    *float64 `json:"cross_stance,omitempty" gorm:"type:decimal(3,1)"`

	// Combinations
	Combination1 *float64 `json:"combination1,omitempty" gorm:"type:decimal(3,1)"`
	Combination2 *float64 `json:"combination2,omitempty" gorm:"type:decimal(3,1)"`
	Combination3 *float64 `json:"combination3,omitempty" gorm:"type:decimal(3,1)"`
	Combination4 *float64 `json:"combination4,omitempty" gorm:"type:decimal(3,1)"`
	Combination5 *float64 `json:"combination5,omitempty" gorm:"type:decimal(3,1)"`

	// Falling and rolling
	FrontFall     *float64 `json:"front_fall,omitempty" gorm:"type:decimal(3,1)"`
	BackFall      *float64 `json:"back_fall,omitempty" gorm:"type:decimal(3,1)"`
	SideFallLeft  *float64 `json:"side_fall_left,omitempty" gorm:"type:decimal(3,1)"`
	SideFallRight *float64 `json:"side_fall_right,omitempty" gorm:"type:decimal(3,1)"`
	ForwardRoll   *float64 `json:"forward_roll,omitempty" gorm:"type:decimal(3,1)"`
	BackwardRoll  *float64 `json:"backward_roll,omitempty" gorm:"type:decimal(3,1)"`

	// Self-defense and one-steps
	Traditional1 *float64 `json:"traditional1,omitempty" gorm:"type:decimal(3,1)"`
	Traditional2 *float64 `json:"traditional2,omitempty" gorm:"type:decimal(3,1)"`
	Traditional3 *float64 `json:"traditional3,omitempty" gorm:"type:decimal(3,1)"`
	Traditional4 *float64 `json:"traditional4,omitempty" gorm:"type:decimal(3,1)"`
	MadeUp1      *float64 `json:"made_up1,omitempty" gorm:"type:decimal(3,1)"`
	MadeUp2      *float64 `json:"made_up2,omitempty" gorm:"type:decimal(3,1)"`
	MadeUp3      *float64 `json:"made_up3,omitempty" gorm:"type:decimal(3,1)"`
	MadeUp4      *float64 `json:"made_up4,omitempty" gorm:"type:decimal(3,1)"`
	ThreeSteps1  *float64 `json:"three_steps1,omitempty" gorm:"type:decimal(3,1)"`
	ThreeSteps2  *float64 `json:"three_steps2,omitempty" gorm:"type:decimal(3,1)"`
	ThreeSteps3  *float64 `json:"three_steps3,omitempty" gorm:"type:decimal(3,1)"`
	ThreeSteps4  *float64 `json:"three_steps4,omitempty" gorm:"type:decimal(3,1)"`

	// Advanced techniques
	AdvancedTechnique1 *float64 `json:"advanced_technique1,omitempty" gorm:"type:decimal(3,1)"`
	AdvancedTechnique2 *float64 `json:"advanced_technique2,omitempty" gorm:"type:decimal(3,1)"`
	AdvancedTechnique3 *float64 `json:"advanced_technique3,omitempty" gorm:"type:decimal(3,1)"`
	AdvancedTechnique4 *float64 `json:"advanced_technique4,omitempty" gorm:"type:decimal(3,1)"`
}

// ScoreColumns lists every technique score column on student_assessments in
// the order they appear in the table. JSON field names match column names, so
// this doubles as the whitelist for partial score updates.
var ScoreColumns = []string{
	"geocho_hyung_il_bu", "geocho_hyung_i_bu", "geocho_hyung_sam_bu",
	"pyong_an_cho_dan", "pyong_an_i_dan", "pyong_an_sam_dan", "pyong_an_sa_dan",
	"pyong_an_o_dan", "bassai_dae",
	"low_block", "high_block", "inside_block", "outside_block",
	"knife_hand_block", "double_forearm_block", "x_block", "palm_block",
	"front_kick", "round_kick", "side_kick", "back_kick", "hook_kick",
	"crescent_kick", "axe_kick", "spinning_back_kick", "inside_outside_kick",
	"outside_inside_kick",
	"jump_front_kick", "jump_round_kick", "jump_side_kick", "jump_back_kick",
	"jump_spinning_kick",
	"straight_punch", "reverse_punch", "jab", "double_punch", "triple_punch",
	"back_fist", "hammer_fist", "ridge_hand", "knife_hand_strike", "spear_hand",
	"ready_stance", "front_stance", "back_stance", "horse_stance", "cat_stance",
	"fighting_stance", "cross_stance",
	"combination1", "combination2", "combination3", "combination4", "combination5",
	"front_fall", "back_fall", "side_fall_left", "side_fall_right",
	"forward_roll", "backward_roll",
	"traditional1", "traditional2", "traditional3", "traditional4",
	"made_up1", "made_up2", "made_up3", "made_up4",
	"three_steps1", "three_steps2", "three_steps3", "three_steps4",
	"advanced_technique1", "advanced_technique2", "advanced_technique3",
	"advanced_technique4",
}

// IsScoreColumn reports whether name is a scored technique column.
func IsScoreColumn(name string) bool {
	for _, c := range ScoreColumns {
		if c == name {
			return true
		}
	}
	return false
}

// ScoreFields returns pointers to the score fields in ScoreColumns order,
// for use in Scan calls and score iteration.
func (a *StudentAssessment) ScoreFields() []**float64 {
	return []**float64{
		&a.GeochoHyungIlBu, &a.GeochoHyungIBu, &a.GeochoHyungSamBu,
		&a.PyongAnChoDan, &a.PyongAnIDan, &a.PyongAnSamDan, &a.PyongAnSaDan,
		&a.PyongAnODan, &a.BassaiDae,
		&a.LowBlock, &a.HighBlock, &a.InsideBlock, &a.OutsideBlock,
		&a.KnifeHandBlock, &a.DoubleForearmBlock, &a.XBlock, &a.PalmBlock,
		&a.FrontKick, &a.RoundKick, &a.SideKick, &a.BackKick, &a.HookKick,
		&a.CrescentKick, &a.AxeKick, &a.SpinningBackKick, &a.InsideOutsideKick,
		&a.OutsideInsideKick,
		&a.JumpFrontKick, &a.JumpRoundKick, &a.JumpSideKick, &a.JumpBackKick,
		&a.JumpSpinningKick,
		&a.StraightPunch, &a.ReversePunch, &a.Jab, &a.DoublePunch, &a.TriplePunch,
		&a.BackFist, &a.HammerFist, &a.RidgeHand, &a.KnifeHandStrike, &a.SpearHand,
		&a.ReadyStance, &a.FrontStance, &a.BackStance, &a.HorseStance, &a.CatStance,
		&a.FightingStance, &a.CrossStance,
		&a.Combination1, &a.Combination2, &a.Combination3, &a.Combination4, &a.Combination5,
		&a.FrontFall, &a.BackFall, &a.SideFallLeft, &a.SideFallRight,
		&a.ForwardRoll, &a.BackwardRoll,
		&a.Traditional1, &a.Traditional2, &a.Traditional3, &a.Traditional4,
		&a.MadeUp1, &a.MadeUp2, &a.MadeUp3, &a.MadeUp4,
		&a.ThreeSteps1, &a.ThreeSteps2, &a.ThreeSteps3, &a.ThreeSteps4,
		&a.AdvancedTechnique1, &a.AdvancedTechnique2, &a.AdvancedTechnique3,
		&a.AdvancedTechnique4,
	}
}
