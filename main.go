// Package classification nefroped API
//
// NefroPed API
//
// Pediatric nephrology backend: Schwartz/Mosteller clinical computation,
// patient and observation records, printable monitoring charts.
//
//     Schemes: https
//     BasePath: /api/v1
//     Version: 0.1.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
// swagger:meta
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/gorilla/mux"
	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite"

	"nefroped_backend/app/core"
	"nefroped_backend/app/nefrobundle"
)

var (
	ormDB *gorm.DB
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("----")
	if err := startServer(); err != nil {
		log.Fatal(err)
	}
	log.Println("----")
}

func initBundles() []core.Bundle {
	return []core.Bundle{
		nefrobundle.NewNefroBundle(ormDB),
	}
}

func openDatabase() (*gorm.DB, error) {
	dialect := core.Config.Database.Dialect
	if dialect == "" {
		dialect = "sqlite3"
	}

	switch dialect {
	case "mysql":
		dataSourceName := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", core.Config.Database.User, core.Config.Database.Password, core.Config.Database.Host, core.Config.Database.Port, core.Config.Database.Database)
		return gorm.Open("mysql", dataSourceName)
	default:
		path := core.Config.Database.Path
		if path == "" {
			path = "nefroped.db"
		}
		return gorm.Open("sqlite3", path)
	}
}

func startServer() error {
	configFile := ""
	flag.StringVar(&configFile, "configFile", "config.json", "a string")
	flag.Parse()

	if configFile == "" {
		configFile = "config.json"
	}
	log.Println("using configfile: ", configFile)

	core.Config = core.Configuration{}
	if file, err := os.Open(configFile); err == nil {
		decoder := json.NewDecoder(file)
		if err := decoder.Decode(&core.Config); err != nil {
			log.Println("error: ", err)
		}
		file.Close()
	}

	core.GetEnvironmentConfig(&core.Config)

	log.Print("connecting to database... ")
	ormdb, err := openDatabase()
	if err != nil {
		return err
	}
	log.Println("done")

	ormDB = ormdb
	ormDB.LogMode(core.Config.Database.Debug)

	if core.Config.Database.DoAutoMigrate {
		log.Print("running migrations... ")
		ormDB.AutoMigrate(&nefrobundle.Patient{}, &nefrobundle.Observation{}, &nefrobundle.ReportLog{})
		if ormDB.Dialect().GetName() == "mysql" {
			ormDB.Model(&nefrobundle.Observation{}).AddForeignKey("patient_id", "patients(id)", "RESTRICT", "RESTRICT")
		}
		log.Println("done")
	}

	r := mux.NewRouter()
	s := r.PathPrefix("/api/v1/").Subrouter()

	log.Print("Adding routes... ")
	for _, b := range initBundles() {
		for _, route := range b.GetRoutes() {
			s.Handle(route.Path, middleWare(route.Handler)).Methods(route.Method)
		}
	}
	log.Println("done")

	port := core.Config.Server.InternalPort
	if port == 0 {
		port = 8080
	}
	address := fmt.Sprintf(":%d", port)
	log.Println(address)

	if core.Config.Server.WithSSL {
		return http.ListenAndServeTLS(address, core.Config.Server.SSLCertFile, core.Config.Server.SSLKeyFile, r)
	}
	return http.ListenAndServe(address, r)
}

func middleWare(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		log.Println(r.Method, r.RequestURI)

		h.ServeHTTP(w, r)

		log.Printf("Route: %s - Duration: %f\n", r.RequestURI, time.Since(start).Seconds())
	})
}
