package config

import (
	"testing"

	"github.com/FEAR939/Hikari-DoodStream/filesystem"
	"github.com/FEAR939/Hikari-DoodStream/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without error", func() {
			err := Setup()
			So(err, ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			_ = Setup()
			for name := range Default {
				val := viper.Get(name)
				So(val, ShouldNotBeNil)
			}
		})

		Convey("Resolver defaults should match the service contract", func() {
			_ = Setup()
			So(viper.GetInt(key.ResolverTimeout), ShouldEqual, 30)
			So(viper.GetString(key.ResolverReferer), ShouldEqual, "https://dood.li/")
			So(viper.GetString(key.ResolverOrigin), ShouldEqual, "https://dood.li")
			So(viper.GetBool(key.ResolverProbeSize), ShouldBeFalse)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			result := EnvKeyReplacer.Replace("resolver.probe.size")
			So(result, ShouldEqual, "resolver_probe_size")
		})

		Convey("Field Env should carry the application prefix", func() {
			f := Default[key.ResolverTimeout]
			So(f.Env(), ShouldEqual, "HIKARI_RESOLVER_TIMEOUT")
		})
	})
}
