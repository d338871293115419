package pipeline

// Stage names a step of single-slide processing.
type Stage string

const (
	StageFeatures   Stage = "features"
	StagePredict    Stage = "predict"
	StageResolve    Stage = "resolve"
	StageTemplate   Stage = "template"
	StageSplit      Stage = "split"
	StageBind       Stage = "bind"
	StageTypography Stage = "typography"
	StageImages     Stage = "images"
	StageValidate   Stage = "validate"
)

// StageDefinition describes a stage for progress reporting.
type StageDefinition struct {
	Name     Stage
	Category string
}

// Stage categories used in progress events.
const (
	CategoryAnalysis = "analysis"
	CategoryLayout   = "layout"
	CategoryContent  = "content"
	CategoryStyle    = "style"
	CategoryCheck    = "check"
)

// StageRegistry lists every stage in execution order. Predict runs only when
// no predictions are supplied.
var StageRegistry = []StageDefinition{
	{Name: StageFeatures, Category: CategoryAnalysis},
	{Name: StagePredict, Category: CategoryAnalysis},
	{Name: StageResolve, Category: CategoryLayout},
	{Name: StageTemplate, Category: CategoryLayout},
	{Name: StageSplit, Category: CategoryContent},
	{Name: StageBind, Category: CategoryContent},
	{Name: StageTypography, Category: CategoryStyle},
	{Name: StageImages, Category: CategoryStyle},
	{Name: StageValidate, Category: CategoryCheck},
}

// Category returns the category of a stage, or "" if it is unknown.
func (s Stage) Category() string {
	for _, def := range StageRegistry {
		if def.Name == s {
			return def.Category
		}
	}
	return ""
}
