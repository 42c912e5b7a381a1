package netinfo

// Service names a well-known service and the protocol it is registered for.
type Service struct {
	Protocol string
	Name     string
}

var wellKnownPorts = map[int]Service{
	21:   {"tcp", "FTP"},
	22:   {"tcp", "SSH"},
	23:   {"tcp", "Telnet"},
	25:   {"tcp", "SMTP"},
	53:   {"udp", "DNS"},
	80:   {"tcp", "HTTP"},
	110:  {"tcp", "POP3"},
	123:  {"udp", "NTP"},
	143:  {"tcp", "IMAP"},
	161:  {"udp", "SNMP"},
	443:  {"tcp", "HTTPS"},
	465:  {"tcp", "SMTPS"},
	587:  {"tcp", "SMTP Submission"},
	993:  {"tcp", "IMAPS"},
	995:  {"tcp", "POP3S"},
	1194: {"udp", "OpenVPN"},
	1723: {"tcp", "PPTP"},
	3389: {"tcp", "RDP"},
	5060: {"udp", "SIP"},
	8080: {"tcp", "HTTP Proxy"},
	8443: {"tcp", "HTTPS Alt"},
}

// ServiceForPort looks up the well-known service registered on a port.
// Absence is not an error; callers render the service name as unknown.
func ServiceForPort(port int) (Service, bool) {
	s, ok := wellKnownPorts[port]
	return s, ok
}
