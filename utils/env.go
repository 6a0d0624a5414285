package utils

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type EnvVars struct {
	Damping       float64
	Samples       int
	Tolerance     float64
	MaxIterations int
	ProbeCheck    bool
	Seed          int64
	GraphOutput   string
	Host          string
	Port          int
	ServerLog     bool
}

func ReadEnvVars() EnvVars {
	// Loading .env file if it exists
	// It will not override already existing env vars
	_ = godotenv.Load()
	damping := readFloatEnvVarOr("DAMPING", 0.85)
	samples := ReadIntEnvVarOr("SAMPLES", 10000)
	tolerance := readFloatEnvVarOr("TOLERANCE", 1e-3)
	maxIterations := ReadIntEnvVarOr("MAX_ITERATIONS", 10000)
	probeCheck := readBoolEnvVarOr("PROBE_CHECK", false)
	seed := readInt64EnvVarOr("SEED", 0)
	graphOutput := readStringEnvVarOr("GRAPH_OUTPUT", "")
	host := readStringEnvVarOr("HOST", "")
	port := ReadIntEnvVarOr("PORT", 1234)
	serverLog := readBoolEnvVarOr("SERVER_LOG", false)
	return EnvVars{
		Damping: damping, Samples: samples,
		Tolerance: tolerance, MaxIterations: maxIterations,
		ProbeCheck: probeCheck, Seed: seed, GraphOutput: graphOutput,
		Host: host, Port: port, ServerLog: serverLog,
	}
}

func readStringEnvVar(name string) (string, error) {
	value := os.Getenv(name)
	if value == "" {
		return "", fmt.Errorf("%s not set", name)
	}
	return value, nil
}

func readStringEnvVarOr(name string, or string) string {
	value, err := readStringEnvVar(name)
	if err != nil {
		value = or
	}
	return value
}

func readIntEnvVar(name string) (int, error) {
	valueStr, err := readStringEnvVar(name)
	if err != nil {
		return 0, err
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("could not convert %s to a number: %v", name, err)
	}
	return value, nil
}

func ReadIntEnvVarOr(name string, or int) int {
	value, err := readIntEnvVar(name)
	if err != nil {
		value = or
	}
	return value
}

func readInt64EnvVarOr(name string, or int64) int64 {
	valueStr, err := readStringEnvVar(name)
	if err != nil {
		return or
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return or
	}
	return value
}

func readFloatEnvVarOr(name string, or float64) float64 {
	valueStr, err := readStringEnvVar(name)
	if err != nil {
		return or
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return or
	}
	return value
}

func readBoolEnvVarOr(name string, or bool) bool {
	valueStr, err := readStringEnvVar(name)
	if err != nil {
		return or
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return or
	}
	return value
}
