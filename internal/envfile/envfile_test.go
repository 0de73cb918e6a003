package envfile_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/storagecheck/internal/envfile"
	"github.com/angeloszaimis/storagecheck/internal/resolver"
)

var _ = Describe("Envfile", func() {
	var tempDir string

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "envfile-test-*")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
	})

	writeEnv := func(content string) string {
		path := filepath.Join(tempDir, ".env")
		Expect(os.WriteFile(path, []byte(content), 0644)).To(Succeed())
		return path
	}

	Describe("Load", func() {
		It("reads values from the file", func() {
			path := writeEnv(`
USE_R2_FOR_NEW_UPLOADS=true
R2_ENDPOINT=https://acct.r2.cloudflarestorage.com
# comment
R2_ACCESS_KEY_ID="quoted-id"
R2_SECRET_ACCESS_KEY=secret
`)
			snapshot, err := envfile.Load(path, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(snapshot).To(HaveKeyWithValue(resolver.KeyUseR2, "true"))
			Expect(snapshot).To(HaveKeyWithValue(resolver.KeyR2AccessKeyID, "quoted-id"))

			res := resolver.Resolve(snapshot)
			Expect(res.Active).To(Equal(resolver.BackendR2))
			Expect(res.Ready).To(BeTrue())
		})

		It("lets the process environment win over the file", func() {
			path := writeEnv("USE_R2_FOR_NEW_UPLOADS=true\nCLOUDINARY_CLOUD_NAME=file\n")

			snapshot, err := envfile.Load(path, []string{
				"USE_R2_FOR_NEW_UPLOADS=false",
				"CLOUDINARY_API_KEY=from-env",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(snapshot).To(HaveKeyWithValue(resolver.KeyUseR2, "false"))
			Expect(snapshot).To(HaveKeyWithValue(resolver.KeyCloudinaryName, "file"))
			Expect(snapshot).To(HaveKeyWithValue(resolver.KeyCloudinaryKey, "from-env"))
		})

		It("keeps an explicitly empty environment value", func() {
			path := writeEnv("R2_ENDPOINT=https://example.com\n")

			snapshot, err := envfile.Load(path, []string{"R2_ENDPOINT="})
			Expect(err).NotTo(HaveOccurred())
			Expect(snapshot).To(HaveKeyWithValue(resolver.KeyR2Endpoint, ""))
		})

		It("uses only the environment when the file is missing", func() {
			snapshot, err := envfile.Load(filepath.Join(tempDir, "missing.env"), []string{"CLOUDINARY_API_SECRET=s"})
			Expect(err).NotTo(HaveOccurred())
			Expect(snapshot).To(Equal(resolver.Map{resolver.KeyCloudinarySecret: "s"}))
		})

		It("skips the file when no path is given", func() {
			snapshot, err := envfile.Load("", nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(snapshot).To(BeEmpty())
		})

		It("returns an error when the path is a directory", func() {
			_, err := envfile.Load(tempDir, nil)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("FromEnviron", func() {
		It("splits on the first separator", func() {
			snapshot := envfile.FromEnviron([]string{"A=b=c", "EMPTY=", "BROKEN", "=novalue"})
			Expect(snapshot).To(Equal(resolver.Map{"A": "b=c", "EMPTY": ""}))
		})
	})

	Describe("Loader", func() {
		It("re-reads the file on every call", func() {
			path := writeEnv("USE_R2_FOR_NEW_UPLOADS=false\n")
			load := envfile.Loader(path, func() []string { return nil })

			src, err := load()
			Expect(err).NotTo(HaveOccurred())
			Expect(resolver.Value(src, resolver.KeyUseR2)).To(Equal("false"))

			writeEnv("USE_R2_FOR_NEW_UPLOADS=true\n")
			src, err = load()
			Expect(err).NotTo(HaveOccurred())
			Expect(resolver.Value(src, resolver.KeyUseR2)).To(Equal("true"))
		})
	})
})
