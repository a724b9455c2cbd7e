package config_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/garrettborunda-lab/movefitrx-poc/config"
)

var _ = Describe("Config", func() {
	It("loads defaults from the environment", func() {
		cfg, err := config.New()
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.HttpPort).To(Equal(uint16(8080)))
		Expect(cfg.PollInterval).To(Equal(time.Second))
		Expect(cfg.PaymentDelay).To(Equal(2 * time.Second))
		Expect(cfg.SeedDemoData).To(BeTrue())
		Expect(cfg.StoreDriver).To(Equal("memory"))
	})

	It("overrides defaults from environment variables", func() {
		GinkgoT().Setenv("MOVEFITRX_VIEW_POLL_INTERVAL", "250ms")
		GinkgoT().Setenv("MOVEFITRX_STORE_DRIVER", "mongo")

		cfg, err := config.New()
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.PollInterval).To(Equal(250 * time.Millisecond))
		Expect(cfg.StoreDriver).To(Equal("mongo"))
	})
})
