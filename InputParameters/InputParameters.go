package InputParameters

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"
	"github.com/go-playground/validator/v10"
)

// Parameters obtained from the YAML input file
type QuadratureParameters struct {
	Title          string  `yaml:"Title"`
	Orders         []int   `yaml:"Orders" validate:"required,min=1,dive,min=1"`
	A              float64 `yaml:"A"`
	B              float64 `yaml:"B" validate:"gtfield=A"`
	Integrand      string  `yaml:"Integrand" validate:"required"`
	Method         string  `yaml:"Method" validate:"omitempty,oneof=newton eigen Newton Eigen"`
	Tolerance      float64 `yaml:"Tolerance" validate:"gte=0"`
	MaxIterations  int     `yaml:"MaxIterations" validate:"gte=0"`
	ParallelDegree int     `yaml:"ParallelDegree" validate:"gte=0"`
	Panels         int     `yaml:"Panels" validate:"gte=0"`
}

var validate = validator.New()

// NewQuadratureParameters returns the x^6 - sin(2x)x^2 sweep over [1,3].
func NewQuadratureParameters() *QuadratureParameters {
	return &QuadratureParameters{
		Title:          "x^6 - sin(2x) x^2 on [1,3]",
		Orders:         []int{2, 3, 4, 5, 6, 7},
		A:              1,
		B:              3,
		Integrand:      "poly6sin",
		Method:         "newton",
		Tolerance:      1.e-15,
		MaxIterations:  100,
		ParallelDegree: 1,
		Panels:         1,
	}
}

// Parse overlays the YAML in data on the current values; absent keys keep
// their previous value.
func (ip *QuadratureParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, ip)
}

func (ip *QuadratureParameters) ReadFile(fileName string) (err error) {
	var data []byte
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	if err = ip.Parse(data); err != nil {
		err = fmt.Errorf("parsing %s: %w", fileName, err)
	}
	return
}

func (ip *QuadratureParameters) Validate() (err error) {
	if err = validate.Struct(ip); err != nil {
		err = fmt.Errorf("invalid input parameters: %w", err)
	}
	return
}

func (ip *QuadratureParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%v\t\t= Orders\n", ip.Orders)
	fmt.Printf("[%g, %g]\t\t\t= Interval\n", ip.A, ip.B)
	fmt.Printf("[%s]\t\t= Integrand\n", ip.Integrand)
	fmt.Printf("[%s]\t\t= Method\n", ip.Method)
	fmt.Printf("%8.2e\t\t= Tolerance\n", ip.Tolerance)
	fmt.Printf("[%d]\t\t\t= Max Iterations\n", ip.MaxIterations)
	fmt.Printf("[%d]\t\t\t\t= Parallel Degree\n", ip.ParallelDegree)
	fmt.Printf("[%d]\t\t\t\t= Panels\n", ip.Panels)
}
