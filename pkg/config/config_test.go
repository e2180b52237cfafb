package config

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func validConfig() *Config {
	c := &Config{}
	c.Server.Host = "0.0.0.0"
	c.Server.Port = 8086
	c.Auth.Token = "s3cr3t"
	c.Auth.OwnerNumber = "919818039142"
	c.Meme.BaseURL = "https://memegen-lb2x.onrender.com"
	c.Meme.Timeout = 60 * time.Second
	return c
}

func TestValidate(t *testing.T) {
	Convey("Given a fully populated configuration", t, func() {
		So(validConfig().Validate(), ShouldBeNil)

		Convey("A missing auth token fails validation", func() {
			c := validConfig()
			c.Auth.Token = ""
			So(c.Validate(), ShouldNotBeNil)
		})

		Convey("A missing owner number fails validation", func() {
			c := validConfig()
			c.Auth.OwnerNumber = ""
			So(c.Validate(), ShouldNotBeNil)
		})

		Convey("An empty upstream URL fails validation", func() {
			c := validConfig()
			c.Meme.BaseURL = ""
			So(c.Validate(), ShouldNotBeNil)
		})

		Convey("A non-positive timeout fails validation", func() {
			c := validConfig()
			c.Meme.Timeout = 0
			So(c.Validate(), ShouldNotBeNil)
		})

		Convey("An out-of-range port fails validation", func() {
			c := validConfig()
			c.Server.Port = 0
			So(c.Validate(), ShouldNotBeNil)
		})
	})
}

// Load is a process-wide singleton, so the environment round trip lives in
// one test.
func TestLoad(t *testing.T) {
	t.Setenv("AUTH_TOKEN", "s3cr3t")
	t.Setenv("MY_NUMBER", "919818039142")
	t.Setenv("PORT", "9090")

	Convey("Given AUTH_TOKEN, MY_NUMBER and PORT in the environment", t, func() {
		cfg := Load()

		Convey("Explicit values come from the environment", func() {
			So(cfg.Auth.Token, ShouldEqual, "s3cr3t")
			So(cfg.Auth.OwnerNumber, ShouldEqual, "919818039142")
			So(cfg.Server.Port, ShouldEqual, 9090)
		})

		Convey("Everything else falls back to defaults", func() {
			So(cfg.Server.Host, ShouldEqual, "0.0.0.0")
			So(cfg.Meme.BaseURL, ShouldEqual, "https://memegen-lb2x.onrender.com")
			So(cfg.Meme.Timeout, ShouldEqual, 60*time.Second)
		})

		Convey("The configuration validates", func() {
			So(cfg.Validate(), ShouldBeNil)
		})
	})
}
