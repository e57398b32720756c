package model

// ModelRiskExplainability is the remediation view of one model's score:
// what to fix, in which order, and where the score lands if everything
// listed gets done
type ModelRiskExplainability struct {
	ModelID            string
	FinalMRS           int
	RemediationRoadmap []RemediationItem
	ProjectedMRS       int
}
