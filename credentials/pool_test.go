package credentials_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/garrettborunda-lab/movefitrx-poc/credentials"
	"github.com/garrettborunda-lab/movefitrx-poc/seed"
)

var _ = Describe("Credential Pool", func() {
	var pool credentials.Pool

	BeforeEach(func() {
		pool = credentials.NewPool(seed.Credentials())
	})

	Describe("Issue", func() {
		It("issues credentials in insertion order", func() {
			first, err := pool.Issue(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(first.Id).To(Equal("MFRX-AB001"))
			Expect(first.Consumed).To(BeTrue())

			second, err := pool.Issue(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(second.Id).To(Equal("MFRX-CD002"))
		})

		It("never issues the same credential twice", func() {
			issued := map[string]struct{}{}
			for i := 0; i < seed.PoolSize; i++ {
				credential, err := pool.Issue(context.Background())
				Expect(err).ToNot(HaveOccurred())
				Expect(issued).ToNot(HaveKey(credential.Id))
				issued[credential.Id] = struct{}{}
			}
		})

		It("reports exhaustion after the pool is drained", func() {
			for i := 0; i < seed.PoolSize; i++ {
				_, err := pool.Issue(context.Background())
				Expect(err).ToNot(HaveOccurred())
			}

			credential, err := pool.Issue(context.Background())
			Expect(credential).To(BeNil())
			Expect(err).To(MatchError(credentials.ErrPoolExhausted))
		})
	})

	Describe("Remaining", func() {
		It("decreases by one per issued credential", func() {
			remaining, err := pool.Remaining(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(remaining).To(Equal(seed.PoolSize))

			_, err = pool.Issue(context.Background())
			Expect(err).ToNot(HaveOccurred())

			remaining, err = pool.Remaining(context.Background())
			Expect(err).ToNot(HaveOccurred())
			Expect(remaining).To(Equal(seed.PoolSize - 1))
		})
	})
})
