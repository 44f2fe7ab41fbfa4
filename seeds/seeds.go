package seeds

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func Setup(ctx context.Context, pool *pgxpool.Pool) error {
	rng := rand.New(rand.NewSource(42))

	// Truncate existing data before insert
	log.Info().Msg("[seed] truncating existing data")
	if _, err := pool.Exec(ctx, `
		TRUNCATE activities, favorites, products, sports, places, cakes,
		         accessories, laptops, phones, recipes, users
		RESTART IDENTITY CASCADE
	`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	log.Info().Msg("[seed] inserting users")
	if err := seedUsers(ctx, pool, rng, 20); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	log.Info().Msg("[seed] inserting catalogs")
	if err := seedCatalogs(ctx, pool, rng); err != nil {
		return fmt.Errorf("seed catalogs: %w", err)
	}

	log.Info().Msg("[seed] inserting products")
	if err := seedProducts(ctx, pool, rng, 40); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}

	log.Info().Msg("[seed] inserting activities")
	if err := seedActivities(ctx, pool, rng, 200); err != nil {
		return fmt.Errorf("seed activities: %w", err)
	}

	log.Info().Msg("[seed] inserting favorites")
	if err := seedFavorites(ctx, pool, rng, 60); err != nil {
		return fmt.Errorf("seed favorites: %w", err)
	}

	log.Info().Msg("[seed] seeding complete")
	return nil
}

func seedUsers(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, n int) error {
	firstNames := []string{"María", "José", "Ana", "Carlos", "Lucía", "Miguel", "Sofía", "Diego", "Valentina", "Andrés"}
	lastNames := []string{"García", "Rodríguez", "López", "Martínez", "Pérez", "Sánchez", "Torres", "Flores"}
	cities := []string{"Lima", "Bogotá", "Quito", "Santiago", "Buenos Aires", "Ciudad de México", "Montevideo"}

	rows := []string{}
	args := []any{}

	for i := 0; i < n; i++ {
		name := firstNames[rng.Intn(len(firstNames))] + " " + lastNames[rng.Intn(len(lastNames))]
		email := fmt.Sprintf("usuario%d@example.com", i+1)
		city := cities[rng.Intn(len(cities))]
		createdAt := time.Now().AddDate(0, 0, -rng.Intn(365))

		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4))
		args = append(args, name, email, city, createdAt)
	}

	if len(rows) == 0 {
		return nil
	}

	query := "INSERT INTO users (name, email, city, created_at) VALUES " + strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func seedCatalogs(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand) error {
	if err := seedRecipes(ctx, pool, rng); err != nil {
		return err
	}
	if err := seedPhones(ctx, pool, rng); err != nil {
		return err
	}
	if err := seedLaptops(ctx, pool, rng); err != nil {
		return err
	}
	if err := seedAccessories(ctx, pool); err != nil {
		return err
	}
	if err := seedCakes(ctx, pool, rng); err != nil {
		return err
	}
	if err := seedPlaces(ctx, pool, rng); err != nil {
		return err
	}
	return seedSports(ctx, pool)
}

func seedRecipes(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand) error {
	names := []string{
		"Lomo Saltado", "Ají de Gallina", "Ceviche Clásico", "Arroz con Pollo",
		"Causa Limeña", "Tacu Tacu", "Seco de Res", "Papa a la Huancaína",
		"Arroz Chaufa", "Anticuchos",
	}
	difficulties := []string{"fácil", "media", "difícil"}

	rows := []string{}
	args := []any{}

	for _, name := range names {
		difficulty := difficulties[rng.Intn(len(difficulties))]
		prep := 15 + rng.Intn(90)
		portions := 2 + rng.Intn(6)

		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6))
		args = append(args, name, "Receta tradicional de "+name, "", difficulty, prep, portions)
	}

	query := "INSERT INTO recipes (name, description, image, difficulty, prep_minutes, portions) VALUES " +
		strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func seedPhones(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand) error {
	models := []struct {
		model string
		brand string
		price float64
	}{
		{"Galaxy S24", "Samsung", 3499}, {"Galaxy A55", "Samsung", 1599},
		{"iPhone 15", "Apple", 4299}, {"iPhone 13", "Apple", 2899},
		{"Redmi Note 13", "Xiaomi", 999}, {"Poco X6", "Xiaomi", 1199},
		{"Moto G84", "Motorola", 899}, {"Pixel 8", "Google", 3199},
	}

	rows := []string{}
	args := []any{}

	for _, m := range models {
		createdAt := time.Now().AddDate(0, 0, -rng.Intn(240))

		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6))
		args = append(args, m.model, m.brand, m.price, "", "", createdAt)
	}

	query := "INSERT INTO phones (model, brand, price, description, image, created_at) VALUES " +
		strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func seedLaptops(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand) error {
	models := []struct {
		model string
		brand string
		price float64
		ram   int
		disk  int
	}{
		{"ThinkPad E14", "Lenovo", 2899, 16, 512}, {"IdeaPad Slim 3", "Lenovo", 1799, 8, 256},
		{"MacBook Air M2", "Apple", 4999, 8, 256}, {"Aspire 5", "Acer", 1999, 16, 512},
		{"Pavilion 15", "HP", 2499, 16, 512}, {"Inspiron 15", "Dell", 2299, 8, 512},
		{"VivoBook 16", "Asus", 2099, 16, 512},
	}

	rows := []string{}
	args := []any{}

	for _, m := range models {
		createdAt := time.Now().AddDate(0, 0, -rng.Intn(240))

		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7))
		args = append(args, m.model, m.brand, m.price, m.ram, m.disk, "", createdAt)
	}

	query := "INSERT INTO laptops (model, brand, price, ram_gb, storage_gb, image, created_at) VALUES " +
		strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func seedAccessories(ctx context.Context, pool *pgxpool.Pool) error {
	items := []struct {
		name  string
		brand string
		price float64
	}{
		{"Audífonos WH-1000XM5", "Sony", 1299}, {"Mouse MX Master 3S", "Logitech", 449},
		{"Teclado K380", "Logitech", 159}, {"Cargador 65W GaN", "Anker", 189},
		{"Funda Galaxy S24", "Samsung", 89}, {"AirPods Pro", "Apple", 999},
		{"Power Bank 20000mAh", "Xiaomi", 129}, {"Hub USB-C 7 en 1", "Ugreen", 149},
	}

	rows := []string{}
	args := []any{}

	for _, it := range items {
		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4))
		args = append(args, it.name, it.brand, it.price, "")
	}

	query := "INSERT INTO accessories (name, brand, price, image) VALUES " + strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func seedCakes(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand) error {
	cakes := []struct {
		name   string
		flavor string
		price  float64
	}{
		{"Torta de Chocolate", "chocolate", 85}, {"Torta Tres Leches", "vainilla", 75},
		{"Torta Selva Negra", "chocolate", 95}, {"Cheesecake de Fresa", "fresa", 80},
		{"Torta de Zanahoria", "zanahoria", 70}, {"Torta Helada", "fresa", 65},
		{"Pie de Limón", "limón", 55},
	}

	rows := []string{}
	args := []any{}

	for _, c := range cakes {
		orders := int(math.Ceil(math.Pow(rng.Float64(), 2.0) * 500))

		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6))
		args = append(args, c.name, c.flavor, c.price, "", "", orders)
	}

	query := "INSERT INTO cakes (name, flavor, price, description, image, orders_count) VALUES " +
		strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func seedPlaces(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand) error {
	places := []struct {
		name    string
		address string
	}{
		{"Parque Kennedy", "Miraflores"}, {"Museo Larco", "Pueblo Libre"},
		{"Malecón de Barranco", "Barranco"}, {"Circuito Mágico del Agua", "Cercado"},
		{"Huaca Pucllana", "Miraflores"}, {"Mercado de Surquillo", "Surquillo"},
		{"Plaza Mayor", "Centro Histórico"},
	}

	rows := []string{}
	args := []any{}

	for _, p := range places {
		rating := 3.0 + math.Round(rng.Float64()*20)/10

		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5))
		args = append(args, p.name, p.address, rating, "", "")
	}

	query := "INSERT INTO places (name, address, rating, description, image) VALUES " +
		strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func seedSports(ctx context.Context, pool *pgxpool.Pool) error {
	sports := []struct {
		name       string
		discipline string
	}{
		{"Fútbol 7 en La Bombonera", "fútbol"}, {"Vóley Playa", "vóley"},
		{"Ciclismo de Ruta", "ciclismo"}, {"Natación Libre", "natación"},
		{"Running Costa Verde", "running"}, {"Básquet 3x3", "básquet"},
	}

	rows := []string{}
	args := []any{}

	for _, s := range sports {
		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4))
		args = append(args, s.name, s.discipline, "", "")
	}

	query := "INSERT INTO sports (name, discipline, description, image) VALUES " + strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func seedProducts(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, n int) error {
	categories := []struct {
		id   int64
		name string
	}{
		{54, "Celulares"}, {55, "Laptops"}, {56, "Accesorios"},
		{57, "Tortas"}, {58, "Deportes"},
	}
	brands := []string{"Genérico", "Samsung", "Apple", "Xiaomi", "Sony", "HP"}

	rows := []string{}
	args := []any{}

	for i := 0; i < n; i++ {
		cat := categories[i%len(categories)]
		brand := brands[rng.Intn(len(brands))]
		price := math.Round(rng.Float64()*490000)/100 + 10
		name := fmt.Sprintf("%s producto %d", cat.name, i+1)

		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7))
		args = append(args, name, "", brand, price, cat.id, cat.name, "")
	}

	if len(rows) == 0 {
		return nil
	}

	query := "INSERT INTO products (name, description, brand, price, category_id, category_name, image) VALUES " +
		strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func seedActivities(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, n int) error {
	types := []string{"item_viewed", "phone_viewed", "recipe_viewed", "recipe_prepared"}
	typeWeights := []float64{0.4, 0.25, 0.25, 0.1}
	brands := []string{"Samsung", "Apple", "Xiaomi", "Lenovo", "HP"}

	rows := []string{}
	args := []any{}

	for i := 0; i < n; i++ {
		// Skewed toward low user ids so a few users have rich histories
		userID := int64(math.Ceil(math.Pow(rng.Float64(), 1.5) * 20))
		userID = max(1, min(userID, 20))

		activityType := weightedChoice(rng, types, typeWeights)
		referenceID := int64(rng.Intn(10) + 1)
		createdAt := time.Now().AddDate(0, 0, -rng.Intn(60))

		meta := map[string]any{}
		switch activityType {
		case "phone_viewed":
			meta["brand"] = brands[rng.Intn(len(brands))]
			meta["price"] = math.Round(rng.Float64()*400000)/100 + 500
			meta["categoryId"] = 54
		case "item_viewed":
			meta["categoryName"] = []string{"Laptops", "Accesorios", "Tortas", "Lugares", "Deportes"}[rng.Intn(5)]
		}
		metaJSON, err := json.Marshal(meta)
		if err != nil {
			return fmt.Errorf("marshal metadata: %w", err)
		}

		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d, TRUE, $%d)",
			base+1, base+2, base+3, base+4, base+5))
		args = append(args, userID, activityType, referenceID, metaJSON, createdAt)
	}

	if len(rows) == 0 {
		return nil
	}

	query := "INSERT INTO activities (user_id, type, reference_id, metadata, is_active, created_at) VALUES " +
		strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func seedFavorites(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, n int) error {
	types := []string{"receta", "celular", "laptop", "torta", "lugar"}

	seen := make(map[[3]any]bool)

	rows := []string{}
	args := []any{}

	for i := 0; i < n; i++ {
		userID := int64(math.Ceil(math.Pow(rng.Float64(), 1.5) * 20))
		userID = max(1, min(userID, 20))

		favType := types[rng.Intn(len(types))]
		referenceID := int64(rng.Intn(8) + 1)

		key := [3]any{userID, favType, referenceID}
		if seen[key] {
			continue
		}
		seen[key] = true

		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, TRUE)", base+1, base+2, base+3))
		args = append(args, userID, favType, referenceID)
	}

	if len(rows) == 0 {
		return nil
	}

	query := "INSERT INTO favorites (user_id, type, reference_id, is_active) VALUES " +
		strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func weightedChoice(rng *rand.Rand, choices []string, weights []float64) string {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := rng.Float64() * total
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if r <= cumulative {
			return choices[i]
		}
	}
	return choices[len(choices)-1]
}
