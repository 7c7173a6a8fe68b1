package InputParameters

import (
	"fmt"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/go-playground/validator/v10"

	"github.com/notargets/lwrtraffic/lwr_riemann"
)

var (
	validate = validator.New()
)

type RiemannCase struct {
	Name string  `yaml:"Name"`
	QL   float64 `yaml:"QL" validate:"gte=0,lte=1"`
	QR   float64 `yaml:"QR" validate:"gte=0,lte=1"`
	VL   float64 `yaml:"VL" validate:"gt=0"`
	VR   float64 `yaml:"VR" validate:"gt=0"`
}

func (rc RiemannCase) Problem() lwr_riemann.Problem {
	return lwr_riemann.NewProblem(rc.QL, rc.QR, rc.VL, rc.VR)
}

// Parameters obtained from the YAML input file
type RiemannParameters struct {
	Title     string        `yaml:"Title"`
	Tolerance float64       `yaml:"Tolerance" validate:"gte=0"`
	Time      float64       `yaml:"Time" validate:"gte=0"`
	XiMin     float64       `yaml:"XiMin"`
	XiMax     float64       `yaml:"XiMax" validate:"gtfield=XiMin"`
	Samples   int           `yaml:"Samples" validate:"gte=2"`
	Cases     []RiemannCase `yaml:"Cases" validate:"required,min=1,dive"`
}

func NewRiemannParameters() *RiemannParameters {
	return &RiemannParameters{
		Tolerance: lwr_riemann.DefaultTolerance,
		XiMin:     -1,
		XiMax:     1,
		Samples:   11,
	}
}

// Parse fills in the parameters from YAML, fields missing from the input keep their current values
func (rp *RiemannParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, rp)
}

func (rp *RiemannParameters) Validate() (err error) {
	if err = validate.Struct(rp); err == nil {
		return
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return
	}
	reasons := make([]string, len(verrs))
	for i, e := range verrs {
		reasons[i] = fmt.Sprintf("%s: failed %s%s, got %v",
			strings.TrimPrefix(e.Namespace(), "RiemannParameters."), e.Tag(), param(e), e.Value())
	}
	return fmt.Errorf("invalid input parameters: %s", strings.Join(reasons, "; "))
}

func param(e validator.FieldError) string {
	if e.Param() == "" {
		return ""
	}
	return "=" + e.Param()
}

func (rp *RiemannParameters) Problems() (pr []lwr_riemann.Problem) {
	pr = make([]lwr_riemann.Problem, len(rp.Cases))
	for i, rc := range rp.Cases {
		pr[i] = rc.Problem()
	}
	return
}

func (rp *RiemannParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", rp.Title)
	fmt.Printf("%8.2e\t\t= Tolerance\n", rp.Tolerance)
	fmt.Printf("%8.5f\t\t= Time\n", rp.Time)
	fmt.Printf("[%8.3f,%8.3f]\t= Xi Range\n", rp.XiMin, rp.XiMax)
	fmt.Printf("[%d]\t\t\t\t= Samples\n", rp.Samples)
	for i, rc := range rp.Cases {
		fmt.Printf("Cases[%d] %s: %s\n", i, rc.Name, rc.Problem())
	}
}
