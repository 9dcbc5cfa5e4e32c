// seed_catalog genera el script SQL para poblar el catálogo de productos a
// partir del CSV del proveedor (separado por ';', codificado en ISO-8859-1).
//
// Uso: go run ./cmd/seed_catalog [ruta/catalogo.csv]
// Por defecto busca catalogo.csv en el directorio actual.
// Escribe: internal/infrastructure/postgres/migrations/002_seed_catalog.sql
//
// Columnas esperadas: code;name;category;unit;cost_price;sale_price;min_stock
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

type productRow struct {
	code      string
	name      string
	category  string
	unit      string
	costPrice int64
	salePrice int64
	minStock  int64
}

func main() {
	csvPath := "catalogo.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	f, err := os.Open(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	// Los catálogos de proveedor llegan en ISO-8859-1, no UTF-8.
	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.TrimLeadingSpace = true

	records, err := r.ReadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
		os.Exit(1)
	}

	var products []productRow
	for i, rec := range records {
		if i == 0 && strings.EqualFold(rec[0], "code") {
			continue // fila de cabecera
		}
		if len(rec) < 7 {
			fmt.Fprintf(os.Stderr, "Fila %d: esperaba 7 columnas, hay %d\n", i+1, len(rec))
			os.Exit(1)
		}
		p := productRow{
			code:     strings.TrimSpace(rec[0]),
			name:     strings.TrimSpace(rec[1]),
			category: strings.TrimSpace(rec[2]),
			unit:     strings.TrimSpace(rec[3]),
		}
		if p.code == "" || p.name == "" {
			continue
		}
		p.costPrice = parseMoney(rec[4])
		p.salePrice = parseMoney(rec[5])
		p.minStock, _ = strconv.ParseInt(strings.TrimSpace(rec[6]), 10, 64)
		if p.minStock <= 0 {
			p.minStock = 5
		}
		products = append(products, p)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed_catalog.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Catálogo inicial de productos\n")
	out.WriteString("-- Generado desde el CSV del proveedor por cmd/seed_catalog\n\n")
	for _, p := range products {
		fmt.Fprintf(out,
			"INSERT INTO products (id, code, name, category, unit, cost_price, sale_price, stock, min_stock, active)\n"+
				"VALUES ('%s', '%s', '%s', '%s', '%s', %d, %d, 0, %d, TRUE)\n"+
				"ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name, category = EXCLUDED.category,\n"+
				"  unit = EXCLUDED.unit, cost_price = EXCLUDED.cost_price, sale_price = EXCLUDED.sale_price;\n",
			uuid.New().String(), escapeSQL(p.code), escapeSQL(p.name),
			escapeSQL(p.category), escapeSQL(p.unit),
			p.costPrice, p.salePrice, p.minStock)
	}

	fmt.Printf("Generado %s: %d productos\n", outPath, len(products))
}

// parseMoney interpreta montos enteros en rupias, tolerando puntos de miles.
func parseMoney(s string) int64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	n, _ := strconv.ParseInt(s, 10, 64)
	return n
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
