// Package vision provides the mocked waste-image classifier. No model is
// loaded; scores are generated in fixed per-class ranges like the demo.
package vision

import (
	"context"
	"math/rand"
	"sync"
)

// Category groups classes by disposal route.
type Category string

const (
	CategoryOrganic    Category = "Organic"
	CategoryAnorganic  Category = "Anorganic"
	CategoryRecyclable Category = "Recyclable"
)

// Prediction is one scored class for an analyzed image.
type Prediction struct {
	ClassName string   `json:"class_name"`
	Category  Category `json:"category"`
	Action    string   `json:"action"`
	Score     float64  `json:"score"`
}

// Classifier analyzes an image and returns scored predictions.
type Classifier interface {
	Classify(ctx context.Context, imageName string) ([]Prediction, error)
}

type classInfo struct {
	name     string
	category Category
	low      float64
	spread   float64
}

// Fixed class list with the score ranges the demo generated per class.
var classes = []classInfo{
	{"Food Waste (Organic)", CategoryOrganic, 80, 20},
	{"Yard Trimmings (Organic)", CategoryOrganic, 70, 15},
	{"Plastic Bag (Anorganic)", CategoryAnorganic, 60, 15},
	{"Styrofoam (Anorganic)", CategoryAnorganic, 55, 15},
	{"Paper (Recyclable)", CategoryRecyclable, 50, 15},
	{"Aluminum Can (Recyclable)", CategoryRecyclable, 45, 15},
}

var actions = map[Category]string{
	CategoryOrganic:    "compost bin",
	CategoryAnorganic:  "landfill bin",
	CategoryRecyclable: "recycling bin",
}

// MockClassifier produces the fixed prediction cycle with randomized
// confidence scores.
type MockClassifier struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewMockClassifier creates a mock classifier with the given seed.
func NewMockClassifier(seed int64) *MockClassifier {
	return &MockClassifier{rng: rand.New(rand.NewSource(seed))}
}

// Classify scores every known class for the image. The image itself is
// never inspected.
func (c *MockClassifier) Classify(_ context.Context, _ string) ([]Prediction, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	predictions := make([]Prediction, 0, len(classes))
	for _, cls := range classes {
		predictions = append(predictions, Prediction{
			ClassName: cls.name,
			Category:  cls.category,
			Action:    actions[cls.category],
			Score:     cls.low + c.rng.Float64()*cls.spread,
		})
	}
	return predictions, nil
}
