package network

import (
	"net/http"
	"testing"

	"github.com/FEAR939/Hikari-DoodStream/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestSetup(t *testing.T) {
	Convey("Setup", t, func() {
		base := Client.Transport
		defer func() { Client.Transport = base }()

		Convey("Should keep the tuned transport when spoofing is disabled", func() {
			viper.Set(key.NetworkTLSSpoof, false)
			Client.Transport = newTransport()
			Setup()
			_, ok := Client.Transport.(*http.Transport)
			So(ok, ShouldBeTrue)
		})

		Convey("Should install the fingerprint-spoofing transport when enabled", func() {
			viper.Set(key.NetworkTLSSpoof, true)
			defer viper.Set(key.NetworkTLSSpoof, false)

			Setup()
			spoofed, ok := Client.Transport.(*spoofedTransport)
			So(ok, ShouldBeTrue)
			So(spoofed.h2, ShouldNotBeNil)
			So(spoofed.h1, ShouldNotBeNil)
		})
	})
}
