package constants

import "os"

func GetOutDir() string {
	path := os.Getenv("PCSETS_OUT")
	if path != "" {
		return path
	}
	return "./out"
}

func GetServeAddr() string {
	addr := os.Getenv("PCSETS_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetMetadataEndpoint() string {
	return os.Getenv("PCSETS_METADATA_ENDPOINT")
}

func GetMetadataTable() string {
	table := os.Getenv("PCSETS_METADATA_TABLE")
	if table != "" {
		return table
	}
	return "pcsets-examples"
}
