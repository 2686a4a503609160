package mocks

//go:generate mockery --name CatalogStore --srcpkg github.com/coursehive-lab/coursehive/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name EnrollmentStore --srcpkg github.com/coursehive-lab/coursehive/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name ViewStore --srcpkg github.com/coursehive-lab/coursehive/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name RatingStore --srcpkg github.com/coursehive-lab/coursehive/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name StatsStore --srcpkg github.com/coursehive-lab/coursehive/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
//go:generate mockery --name Reconciler --srcpkg github.com/coursehive-lab/coursehive/internal/core/storage --output ./storage --outpkg storagemocks --with-expecter
