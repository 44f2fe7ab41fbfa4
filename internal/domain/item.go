package domain

// RawItem is the minimal view the engine needs of a heterogeneous catalog
// record. Concrete shapes stay opaque until the formatter projects them.
type RawItem interface {
	ItemID() int64
	ItemName() string
	// ItemBrand returns "" for categories without a brand notion.
	ItemBrand() string
}

type Recipe struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Difficulty  string `json:"difficulty"`
	PrepMinutes int    `json:"prep_minutes"`
	Portions    int    `json:"portions"`
}

func (r Recipe) ItemID() int64     { return r.ID }
func (r Recipe) ItemName() string  { return r.Name }
func (r Recipe) ItemBrand() string { return "" }

type Phone struct {
	ID          int64   `json:"id"`
	Model       string  `json:"model"`
	Brand       string  `json:"brand"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

func (p Phone) ItemID() int64     { return p.ID }
func (p Phone) ItemName() string  { return p.Model }
func (p Phone) ItemBrand() string { return p.Brand }

type Laptop struct {
	ID        int64   `json:"id"`
	Model     string  `json:"model"`
	Brand     string  `json:"brand"`
	Price     float64 `json:"price"`
	RAMGB     int     `json:"ram_gb"`
	StorageGB int     `json:"storage_gb"`
	Image     string  `json:"image"`
}

func (l Laptop) ItemID() int64     { return l.ID }
func (l Laptop) ItemName() string  { return l.Model }
func (l Laptop) ItemBrand() string { return l.Brand }

type Accessory struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Brand string  `json:"brand"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

func (a Accessory) ItemID() int64     { return a.ID }
func (a Accessory) ItemName() string  { return a.Name }
func (a Accessory) ItemBrand() string { return a.Brand }

type Cake struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Flavor      string  `json:"flavor"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

func (c Cake) ItemID() int64     { return c.ID }
func (c Cake) ItemName() string  { return c.Name }
func (c Cake) ItemBrand() string { return "" }

type Place struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address"`
	Rating      float64 `json:"rating"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

func (p Place) ItemID() int64     { return p.ID }
func (p Place) ItemName() string  { return p.Name }
func (p Place) ItemBrand() string { return "" }

type Sport struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Discipline  string `json:"discipline"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func (s Sport) ItemID() int64     { return s.ID }
func (s Sport) ItemName() string  { return s.Name }
func (s Sport) ItemBrand() string { return "" }

// Product is the generic catalog record used as a fallback when a
// specialized catalog comes back empty.
type Product struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Brand        string  `json:"brand"`
	Price        float64 `json:"price"`
	CategoryID   int64   `json:"category_id"`
	CategoryName string  `json:"category_name"`
	Image        string  `json:"image"`
}

func (p Product) ItemID() int64     { return p.ID }
func (p Product) ItemName() string  { return p.Name }
func (p Product) ItemBrand() string { return p.Brand }
