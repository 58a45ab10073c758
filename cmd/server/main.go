// Command server runs the in-memory key/value server: it loads a YAML
// config, loads or generates its age identity, bootstraps any configured
// users and ACLs into the store, and serves connections until killed.
package main

import (
	"flag"
	"net"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/FairyTail2000/in-mem/internal/commands"
	"github.com/FairyTail2000/in-mem/internal/config"
	"github.com/FairyTail2000/in-mem/internal/identity"
	"github.com/FairyTail2000/in-mem/internal/server"
	"github.com/FairyTail2000/in-mem/internal/store"
)

func main() {
	host := flag.String("host", "127.0.0.1", "host to bind to")
	port := flag.Uint("port", 3000, "port to bind to")
	brotliEffort := flag.Uint("brotli-effort", 6, "brotli compression effort level, 0-11")
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	identityPath := flag.String("identity", "server-identity.age", "path to the server's age identity file")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if os.Getenv("RUST_LOG") != "" || os.Getenv("LOG_LEVEL") == "debug" {
		log.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithField("error", err).Fatal("loading config")
	}
	if cfg.Host != nil {
		*host = *cfg.Host
	}
	if cfg.Port != nil {
		*port = uint(*cfg.Port)
	}
	if cfg.BrotliQuality != nil {
		*brotliEffort = uint(*cfg.BrotliQuality)
	}
	if cfg.PrivateKeyLoc != nil {
		*identityPath = *cfg.PrivateKeyLoc
	}

	id, err := identity.LoadOrGenerate(*identityPath, log)
	if err != nil {
		log.WithField("error", err).Fatal("loading identity")
	}
	log.WithField("public_key", id.Recipient().String()).Info("server identity ready")

	st := store.New(store.Budget{
		MaxKeys:             cfg.MaxKeys,
		MaxContainerEntries: cfg.MaxContainerItems,
	})

	for _, u := range config.ValidUsers(cfg.Users, log) {
		if err := st.UserAdd(u.Name, u.Password); err != nil {
			log.WithFields(logrus.Fields{"user": u.Name, "error": err}).Warn("failed to bootstrap user, skipping")
			continue
		}
		if u.PublicKey != "" {
			if err := st.BindKey(u.Name, u.PublicKey); err != nil {
				log.WithFields(logrus.Fields{"user": u.Name, "error": err}).Warn("failed to bind bootstrap user's public key")
			}
		}
	}
	for _, acl := range config.ResolveAcls(cfg.Acls, log) {
		for _, cmd := range acl.Commands {
			st.AclAdd(acl.Name, cmd)
		}
	}

	registry := commands.NewRegistry()

	listener := &server.Listener{
		Addr:         hostPort(*host, *port),
		Identity:     id,
		BrotliEffort: int(*brotliEffort),
		Store:        st,
		Registry:     registry,
		Log:          log,
	}
	if err := listener.Run(); err != nil {
		log.WithField("error", err).Fatal("server exited")
	}
}

func hostPort(host string, port uint) string {
	return net.JoinHostPort(host, strconv.FormatUint(uint64(port), 10))
}
