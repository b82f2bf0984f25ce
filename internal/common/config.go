package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	OCR    OCRConfig
	PDF    PDFConfig
	Export ExportConfig
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Tesseract   string // binary name or absolute path; if empty -> "tesseract"
	Language    string // default "eng"
	TessdataDir string
	PSM         int // e.g., 6 is good for uniform block of text
	OEM         int // 1 = LSTM; leave 0 to use default
	Enhance     bool
	Timeout     time.Duration
}

// PDFConfig holds PDF rasterization configuration
type PDFConfig struct {
	Pdftoppm    string  // binary name or absolute path; if empty -> "pdftoppm"
	RenderScale float64 // page render scale, default 2.0
	MaxPages    int     // 0 = no limit
}

// ExportConfig holds export-related configuration
type ExportConfig struct {
	Format string // "json" | "csv" | "xlsx"
	OutDir string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		OCR: OCRConfig{
			Tesseract:   getEnv("TESSERACT_BIN", "tesseract"),
			Language:    getEnv("OCR_LANGUAGE", "eng"),
			TessdataDir: getEnv("TESSDATA_PREFIX", ""),
			PSM:         getEnvAsInt("OCR_PSM", 0),
			OEM:         getEnvAsInt("OCR_OEM", 0),
			Enhance:     getEnvAsBool("OCR_ENHANCE", false),
			Timeout:     getEnvAsDuration("OCR_TIMEOUT", 2*time.Minute),
		},
		PDF: PDFConfig{
			Pdftoppm:    getEnv("PDFTOPPM_BIN", "pdftoppm"),
			RenderScale: getEnvAsFloat64("PDF_RENDER_SCALE", 2.0),
			MaxPages:    getEnvAsInt("PDF_MAX_PAGES", 0),
		},
		Export: ExportConfig{
			Format: getEnv("EXPORT_FORMAT", "json"),
			OutDir: getEnv("EXPORT_DIR", "."),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate checks the loaded configuration
func (c *Config) Validate() error {
	if c.PDF.RenderScale <= 0 {
		return NewAppError("CONFIG_ERROR", "PDF_RENDER_SCALE must be positive", ErrInvalidInput)
	}
	switch c.Export.Format {
	case "json", "csv", "xlsx":
	default:
		return NewAppError("CONFIG_ERROR", "EXPORT_FORMAT must be one of json|csv|xlsx", ErrInvalidInput)
	}
	return nil
}
