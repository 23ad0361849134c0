package models

// AssessmentStatus defines the lifecycle states of a belt assessment.
type AssessmentStatus string

const (
	AssessmentInProgress AssessmentStatus = "in_progress"
	AssessmentCompleted  AssessmentStatus = "completed"
	AssessmentCancelled  AssessmentStatus = "cancelled"
)

// ValidAssessmentStatus reports whether s is a known lifecycle state.
func ValidAssessmentStatus(s string) bool {
	switch AssessmentStatus(s) {
	case AssessmentInProgress, AssessmentCompleted, AssessmentCancelled:
		return true
	}
	return false
}

// TechniqueCategory defines the curriculum categories for reference techniques.
type TechniqueCategory string

const (
	CategoryBlock       TechniqueCategory = "block"
	CategoryKick        TechniqueCategory = "kick"
	CategoryPunch       TechniqueCategory = "punch"
	CategoryStance      TechniqueCategory = "stance"
	CategoryForm        TechniqueCategory = "form"
	CategoryOneStep     TechniqueCategory = "one_step"
	CategorySelfDefense TechniqueCategory = "self_defense"
	CategoryCombination TechniqueCategory = "combination"
	CategoryFalling     TechniqueCategory = "falling"
)

// ValidTechniqueCategory reports whether c is a known curriculum category.
func ValidTechniqueCategory(c string) bool {
	switch TechniqueCategory(c) {
	case CategoryBlock, CategoryKick, CategoryPunch, CategoryStance, CategoryForm,
		CategoryOneStep, CategorySelfDefense, CategoryCombination, CategoryFalling:
		return true
	}
	return false
}

// RelationshipType defines the relationship of a parent/guardian to a student.
type RelationshipType string

const (
	Father   RelationshipType = "father"
	Mother   RelationshipType = "mother"
	Guardian RelationshipType = "guardian"
	OtherRel RelationshipType = "other"
)

// Role names used by the auth middleware. admin and head_instructor may
// mutate curriculum and delete records; instructor may run assessments.
const (
	RoleAdmin          = "admin"
	RoleHeadInstructor = "head_instructor"
	RoleInstructor     = "instructor"
)
