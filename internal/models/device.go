package models

// DeviceInfo is the public description of a configured router. Credentials
// never leave the config package.
type DeviceInfo struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Host   string `json:"host"`
	Port   int    `json:"port"`
	UseTLS bool   `json:"use_tls"`
}
