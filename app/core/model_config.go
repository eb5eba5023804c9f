package core

// swagger:model
type Configuration struct {
	Database   ConfigurationDatabase   `json:"database"`
	Server     ConfigurationServer     `json:"server"`
	MailServer ConfigurationMailServer `json:"mail_server"`
	Facility   ConfigurationFacility   `json:"facility"`
}

// swagger:model
type ConfigurationDatabase struct {
	Dialect       string `json:"dialect"` // sqlite3 (default) or mysql
	Path          string `json:"path"`    // sqlite3 database file
	Host          string `json:"host"`
	Database      string `json:"database"`
	User          string `json:"user"`
	Password      string `json:"password"`
	Port          int    `json:"port"`
	DoAutoMigrate bool   `json:"do_auto_migrate"`
	Debug         bool   `json:"debug"`
}

// swagger:model
type ConfigurationServer struct {
	Hostname     string `json:"hostname"`
	InternalPort int    `json:"internal_port"`
	WithSSL      bool   `json:"with_ssl"`
	SSLCertFile  string `json:"ssl_cert_file"`
	SSLKeyFile   string `json:"ssl_key_file"`
	TmpPath      string `json:"tmp_path"`
}

// swagger:model
type ConfigurationMailServer struct {
	SmtpHost     string `json:"smtp_host"`
	SmtpPort     int    `json:"smtp_port"`
	SmtpUsername string `json:"smtp_username"`
	SmtpPassword string `json:"smtp_password"`
	From         string `json:"from"`
}

// ConfigurationFacility feeds the static header band of the monitoring chart.
type ConfigurationFacility struct {
	Name string `json:"name"`
	Unit string `json:"unit"`
}
