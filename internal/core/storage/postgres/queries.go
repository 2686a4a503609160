package postgres

// SQL for catalog reads, enrollment facts and owner stats (prepared once by Adapter).

const (
	queryGetContribution = `
		SELECT
			id, owner_id, title, price, active,
			requires_enrollment, ratings, total_views, created_at
		FROM contributions
		WHERE id = $1
	`

	queryGetVideo = `
		SELECT id, contribution_id, title, video_url, total_views
		FROM videos
		WHERE id = $1
	`

	// querySaveEnrollment relies on UNIQUE (user_id, contribution_id).
	// ON CONFLICT DO NOTHING returns no rows (sql.ErrNoRows) for duplicates.
	querySaveEnrollment = `
		INSERT INTO enrollments (id, user_id, contribution_id, enrolled_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, contribution_id) DO NOTHING
		RETURNING id
	`

	queryHasEnrollment = `
		SELECT EXISTS (
			SELECT 1 FROM enrollments
			WHERE user_id = $1 AND contribution_id = $2
		)
	`

	queryListEnrollments = `
		SELECT
			e.id, e.user_id, e.contribution_id, e.enrolled_at,
			c.title, c.price, c.ratings, c.total_views, c.active
		FROM enrollments e
		JOIN contributions c ON c.id = e.contribution_id
		WHERE e.user_id = $1
		ORDER BY e.enrolled_at DESC, e.id DESC
	`

	queryGetEnrollment = `
		SELECT id, user_id, contribution_id, enrolled_at
		FROM enrollments
		WHERE id = $1 AND user_id = $2
	`

	queryOwnerStats = `
		SELECT
			COALESCE(SUM(c.total_views), 0),
			COUNT(c.id),
			(SELECT COUNT(*) FROM contribution_ratings r
				JOIN contributions rc ON rc.id = r.contribution_id
				WHERE rc.owner_id = $1),
			(SELECT COUNT(*) FROM enrollments e
				JOIN contributions ec ON ec.id = e.contribution_id
				WHERE ec.owner_id = $1)
		FROM contributions c
		WHERE c.owner_id = $1
	`
)

// SQL for the transactional engagement writes (EngagementAdapter).

const (
	// queryInsertView relies on UNIQUE (user_id, video_id); a returned row means
	// this transaction created the fact and owns the counter increment.
	queryInsertView = `
		INSERT INTO video_views (id, user_id, video_id, viewed_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, video_id) DO NOTHING
		RETURNING id
	`

	queryIncrementVideoViews = `
		UPDATE videos
		SET total_views = total_views + 1, updated_at = $2
		WHERE id = $1
		RETURNING contribution_id, total_views
	`

	queryIncrementContributionViews = `
		UPDATE contributions
		SET total_views = total_views + 1, updated_at = $2
		WHERE id = $1
		RETURNING total_views
	`

	queryReadViewCounters = `
		SELECT v.contribution_id, v.total_views, c.total_views
		FROM videos v
		JOIN contributions c ON c.id = v.contribution_id
		WHERE v.id = $1
	`

	// queryLockContribution serialises raters of one contribution so each
	// recompute sees every committed fact.
	queryLockContribution = `
		SELECT active
		FROM contributions
		WHERE id = $1
		FOR UPDATE
	`

	queryUpsertRating = `
		INSERT INTO contribution_ratings (
			id, user_id, contribution_id, rating, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, contribution_id)
		DO UPDATE SET
			rating     = EXCLUDED.rating,
			updated_at = EXCLUDED.updated_at
		RETURNING id, rating, created_at, updated_at
	`

	queryAverageRating = `
		SELECT COALESCE(AVG(rating), 0), COUNT(*)
		FROM contribution_ratings
		WHERE contribution_id = $1
	`

	queryUpdateCachedRating = `
		UPDATE contributions
		SET ratings = $2, updated_at = $3
		WHERE id = $1
	`

	queryGetRatingSummary = `
		SELECT
			(SELECT r.rating FROM contribution_ratings r
				WHERE r.user_id = $1 AND r.contribution_id = c.id),
			c.ratings,
			(SELECT COUNT(*) FROM contribution_ratings r
				WHERE r.contribution_id = c.id)
		FROM contributions c
		WHERE c.id = $2 AND c.active
	`
)

// SQL for the reconciler. Each statement only touches rows that drifted.
//
// Lock order follows the writers: RecordView takes video_views before any
// counter row, UpsertRating takes its contribution row before
// contribution_ratings. Holding SHARE on a fact table keeps new facts out
// while the recompute runs, so no concurrent increment is overwritten.

const (
	queryLockViewFacts = `LOCK TABLE video_views IN SHARE MODE`

	queryLockContributionRows = `
		SELECT id FROM contributions
		ORDER BY id
		FOR UPDATE
	`

	queryLockRatingFacts = `LOCK TABLE contribution_ratings IN SHARE MODE`

	queryReconcileVideoViews = `
		UPDATE videos v
		SET total_views = s.view_count
		FROM (
			SELECT vid.id, COUNT(vv.id) AS view_count
			FROM videos vid
			LEFT JOIN video_views vv ON vv.video_id = vid.id
			GROUP BY vid.id
		) s
		WHERE v.id = s.id AND v.total_views <> s.view_count
	`

	queryReconcileContributionViews = `
		UPDATE contributions c
		SET total_views = s.view_sum
		FROM (
			SELECT con.id, COALESCE(SUM(vid.total_views), 0) AS view_sum
			FROM contributions con
			LEFT JOIN videos vid ON vid.contribution_id = con.id
			GROUP BY con.id
		) s
		WHERE c.id = s.id AND c.total_views <> s.view_sum
	`

	queryReconcileRatings = `
		UPDATE contributions c
		SET ratings = s.average
		FROM (
			SELECT con.id, COALESCE(ROUND(AVG(r.rating), 2), 0) AS average
			FROM contributions con
			LEFT JOIN contribution_ratings r ON r.contribution_id = con.id
			GROUP BY con.id
		) s
		WHERE c.id = s.id AND c.ratings <> s.average
	`
)
