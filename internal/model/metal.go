package model

// Metal is the kind of precious metal an asset holds.
type Metal string

const (
	Gold   Metal = "gold"
	Silver Metal = "silver"
)

var metalList = []Metal{Gold, Silver}

func ToMetal(s string) (Metal, error) {
	for _, m := range metalList {
		if Metal(s) == m {
			return m, nil
		}
	}
	return "", &ConfigError{Field: "metal", Value: s}
}

func (m Metal) Valid() bool {
	_, err := ToMetal(string(m))
	return err == nil
}

func MetalList() []Metal {
	return metalList
}

// Category separates assets already owned from positions bought as an
// investment. Each category persists to its own file.
type Category string

const (
	Existing   Category = "existing"
	Investment Category = "investment"
)

var categoryList = []Category{Existing, Investment}

func ToCategory(s string) (Category, error) {
	for _, c := range categoryList {
		if Category(s) == c {
			return c, nil
		}
	}
	return "", &ConfigError{Field: "category", Value: s}
}

func (c Category) Valid() bool {
	_, err := ToCategory(string(c))
	return err == nil
}

func CategoryList() []Category {
	return categoryList
}
